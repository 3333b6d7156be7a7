// Package am loads fragfmt configuration from defaults, TOML files and
// FRAGFMT_* environment variables.
package am

// Config represents the fragfmt configuration
type Config struct {
	Render  RenderConfig  `mapstructure:"render" json:"render" yaml:"render" toml:"render"`
	Catalog CatalogConfig `mapstructure:"catalog" json:"catalog" yaml:"catalog" toml:"catalog"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	CLI     CLIConfig     `mapstructure:"cli" json:"cli" yaml:"cli" toml:"cli"`
}

// RenderConfig configures compilation and rendering
type RenderConfig struct {
	StrictKinds bool `mapstructure:"strict_kinds" json:"strict_kinds" yaml:"strict_kinds" toml:"strict_kinds"` // Reject kind mismatches at compile time
}

// CatalogConfig configures message catalogs
type CatalogConfig struct {
	Paths      []string `mapstructure:"paths" json:"paths" yaml:"paths" toml:"paths"`                         // Catalog files, TOML or YAML
	Watch      bool     `mapstructure:"watch" json:"watch" yaml:"watch" toml:"watch"`                         // Reload catalogs when their files change
	DebounceMS int      `mapstructure:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms" toml:"debounce_ms"` // Quiet period before a reload (default: 500)
}

// LogConfig configures logger output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
	Theme string `mapstructure:"theme" json:"theme" yaml:"theme" toml:"theme"` // Color theme: everforest, gruvbox
}

// CLIConfig configures the fragfmt command
type CLIConfig struct {
	TypedArgs    bool   `mapstructure:"typed_args" json:"typed_args" yaml:"typed_args" toml:"typed_args"`             // Decode value arguments as YAML scalars
	OutputFormat string `mapstructure:"output_format" json:"output_format" yaml:"output_format" toml:"output_format"` // json, yaml or toml
}

// Output formats accepted by the CLI
var OutputFormats = []string{"json", "yaml", "toml"}

// Config file names
const (
	ConfigFileName = "fragfmt.toml"
	UserConfigDir  = ".fragfmt"
	EnvPrefix      = "FRAGFMT"
)
