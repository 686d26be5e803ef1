package siteconfig

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/logger"
	"portfolio-site/pkg/validation"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfig []byte

// Load reads the site content from path. When the file does not exist the
// embedded default content is used instead.
func Load(path string) (*domain.SiteContent, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Warn("Site config not found, using embedded default", "path", path)
		data = defaultConfig
	} else if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded default content.
func Default() (*domain.SiteContent, error) {
	return Parse(defaultConfig)
}

// Parse decodes and validates YAML site content and resolves social icons.
func Parse(data []byte) (*domain.SiteContent, error) {
	var content domain.SiteContent
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}

	if err := validation.New().Struct(&content); err != nil {
		return nil, fmt.Errorf("invalid site config: %s", strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	for i := range content.SocialLinks {
		link := &content.SocialLinks[i]
		link.Icon = domain.ParseIcon(link.IconName)
		if link.Icon == domain.IconNone && link.IconName != "" {
			logger.Log.Warn("Unknown social icon, rendering without icon", "link", link.Name, "icon", link.IconName)
		}
	}

	return &content, nil
}
