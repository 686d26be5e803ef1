package validation

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the custom site validators registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("media_url", MediaURL)
}

// MediaURL accepts absolute http(s) URLs and site-relative paths such as /static/img/logo.png
func MediaURL(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	if strings.HasPrefix(val, "/") && !strings.HasPrefix(val, "//") {
		return true
	}
	u, err := url.Parse(val)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
