package am

import (
	"slices"

	"github.com/teranos/fragfmt/errors"
	"github.com/teranos/fragfmt/logger"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Debounce: 0 = default, negative = invalid
	if c.Catalog.DebounceMS < 0 {
		return errors.NewInvalidConfigError("catalog.debounce_ms must be >= 0, got %d", c.Catalog.DebounceMS)
	}

	if c.CLI.OutputFormat != "" && !slices.Contains(OutputFormats, c.CLI.OutputFormat) {
		return errors.WithHintf(
			errors.NewInvalidConfigError("cli.output_format %q is not supported", c.CLI.OutputFormat),
			"use one of %v", OutputFormats)
	}

	if c.Log.Theme != "" && !slices.Contains(logger.Themes, c.Log.Theme) {
		return errors.WithHintf(
			errors.NewInvalidConfigError("log.theme %q is not supported", c.Log.Theme),
			"use one of %v", logger.Themes)
	}

	for i, p := range c.Catalog.Paths {
		if p == "" {
			return errors.NewInvalidConfigError("catalog.paths[%d] is empty", i)
		}
	}

	return nil
}
