package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Name":        "Name",
	"URL":         "URL",
	"Avatar":      "Avatar",
	"DonationURL": "Donation link",
	"Title":       "Title",
	"Images":      "Images",
	"Logo":        "Logo",
	"Link":        "Link",
	"Image":       "Image",
	"Gallery":     "Gallery",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error, prefixed with its namespace
// so that the offending list entry can be found in the config file.
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	where := e.Namespace()
	if i := strings.Index(where, "."); i >= 0 {
		where = where[i+1:]
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (%s): is required", label, where)
	case "url", "media_url":
		return fmt.Sprintf("%s (%s): invalid URL %q", label, where, e.Value())
	default:
		return fmt.Sprintf("%s (%s): failed validation (%s)", label, where, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if i := strings.Index(fieldName, "["); i >= 0 {
		fieldName = fieldName[:i]
	}
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
