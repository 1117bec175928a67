package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	docFormats = []string{FormatJSON, FormatYAML}
)

// Validate performs business-rule validation on the loaded configuration.
// It normalizes case and feature names in place; Load calls it automatically.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Log.Format)
	}

	if err := c.Build.validate(); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	c.Doc.Format = strings.ToLower(strings.TrimSpace(c.Doc.Format))
	if !slices.Contains(docFormats, c.Doc.Format) {
		return fmt.Errorf("doc.format must be one of %s (got %q)", strings.Join(docFormats, ", "), c.Doc.Format)
	}
	if strings.TrimSpace(c.Doc.Title) == "" {
		return fmt.Errorf("doc.title must not be empty")
	}

	return nil
}

func (b *BuildConfig) validate() error {
	if strings.TrimSpace(b.Environment) == "" {
		return fmt.Errorf("environment must not be empty")
	}

	features := make([]string, 0, len(b.Features))
	for _, f := range b.Features {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(features, f) {
			continue
		}
		features = append(features, f)
	}
	b.Features = features

	return nil
}
