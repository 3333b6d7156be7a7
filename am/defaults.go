package am

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Default values
const (
	DefaultDebounceMS   = 500
	DefaultTheme        = "everforest"
	DefaultOutputFormat = "json"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("render.strict_kinds", false)

	v.SetDefault("catalog.paths", []string{})
	v.SetDefault("catalog.watch", false)
	v.SetDefault("catalog.debounce_ms", DefaultDebounceMS)

	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultTheme)

	v.SetDefault("cli.typed_args", true)
	v.SetDefault("cli.output_format", DefaultOutputFormat)
}

// Debounce returns the catalog reload quiet period
func (c *Config) Debounce() time.Duration {
	if c.Catalog.DebounceMS == 0 {
		return DefaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.Catalog.DebounceMS) * time.Millisecond
}

// GetLogTheme returns the log theme (default: everforest)
func (c *Config) GetLogTheme() string {
	if c.Log.Theme == "" {
		return DefaultTheme
	}
	return c.Log.Theme
}

// GetOutputFormat returns the CLI output format (default: json)
func (c *Config) GetOutputFormat() string {
	if c.CLI.OutputFormat == "" {
		return DefaultOutputFormat
	}
	return c.CLI.OutputFormat
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Render: {StrictKinds: %t}, Catalog: {Paths: %d, Watch: %t}, Log: {JSON: %t, Theme: %s}}",
		c.Render.StrictKinds, len(c.Catalog.Paths), c.Catalog.Watch, c.Log.JSON, c.GetLogTheme())
}
