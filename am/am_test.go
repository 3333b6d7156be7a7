package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/fragfmt/errors"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance, no user or project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.False(t, cfg.Render.StrictKinds)
	assert.Empty(t, cfg.Catalog.Paths)
	assert.Equal(t, DefaultDebounceMS, cfg.Catalog.DebounceMS)
	assert.Equal(t, DefaultTheme, cfg.Log.Theme)
	assert.True(t, cfg.CLI.TypedArgs)
	assert.Equal(t, "json", cfg.CLI.OutputFormat)
	assert.NoError(t, cfg.Validate())
}

func TestConfigAccessors(t *testing.T) {
	var cfg Config
	assert.Equal(t, "500ms", cfg.Debounce().String())
	assert.Equal(t, "everforest", cfg.GetLogTheme())
	assert.Equal(t, "json", cfg.GetOutputFormat())

	cfg.Catalog.DebounceMS = 20
	assert.Equal(t, "20ms", cfg.Debounce().String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero value is valid",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "zero debounce is valid (default)",
			config:  Config{Catalog: CatalogConfig{DebounceMS: 0}},
			wantErr: false,
		},
		{
			name:    "negative debounce is invalid",
			config:  Config{Catalog: CatalogConfig{DebounceMS: -1}},
			wantErr: true,
		},
		{
			name:    "yaml output is valid",
			config:  Config{CLI: CLIConfig{OutputFormat: "yaml"}},
			wantErr: false,
		},
		{
			name:    "unknown output format is invalid",
			config:  Config{CLI: CLIConfig{OutputFormat: "xml"}},
			wantErr: true,
		},
		{
			name:    "gruvbox theme is valid",
			config:  Config{Log: LogConfig{Theme: "gruvbox"}},
			wantErr: false,
		},
		{
			name:    "unknown theme is invalid",
			config:  Config{Log: LogConfig{Theme: "solarized"}},
			wantErr: true,
		},
		{
			name:    "empty catalog path is invalid",
			config:  Config{Catalog: CatalogConfig{Paths: []string{"a.toml", ""}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestValidate_Hint(t *testing.T) {
	cfg := Config{CLI: CLIConfig{OutputFormat: "xml"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "json")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "fragfmt.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`
[render]
strict_kinds = true

[catalog]
paths = ["messages.toml", "extra.yaml"]
watch = true
debounce_ms = 100
`), 0644))

	cfg, err := LoadFromFile(tomlPath)
	require.NoError(t, err)
	assert.True(t, cfg.Render.StrictKinds)
	assert.Equal(t, []string{"messages.toml", "extra.yaml"}, cfg.Catalog.Paths)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, 100, cfg.Catalog.DebounceMS)
	// Untouched sections keep their defaults
	assert.Equal(t, DefaultTheme, cfg.Log.Theme)

	yamlPath := filepath.Join(dir, "fragfmt.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("cli:\n  output_format: toml\n  typed_args: false\n"), 0644))

	cfg, err = LoadFromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.CLI.OutputFormat)
	assert.False(t, cfg.CLI.TypedArgs)

	_, err = LoadFromFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_MergesUserProjectAndEnv(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	sub := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(home, UserConfigDir), 0755))

	userPath := filepath.Join(home, UserConfigDir, ConfigFileName)
	require.NoError(t, os.WriteFile(userPath, []byte(`
[log]
theme = "gruvbox"

[catalog]
debounce_ms = 100
`), 0644))

	projectPath := filepath.Join(project, ConfigFileName)
	require.NoError(t, os.WriteFile(projectPath, []byte(`
[catalog]
debounce_ms = 250
`), 0644))

	t.Setenv("HOME", home)
	t.Setenv("FRAGFMT_CLI_OUTPUT_FORMAT", "yaml")
	t.Chdir(sub)
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Log.Theme)
	assert.Equal(t, 250, cfg.Catalog.DebounceMS)
	assert.Equal(t, "yaml", cfg.CLI.OutputFormat)

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again)

	settings, err := Introspect()
	require.NoError(t, err)

	sources := make(map[string]SettingInfo)
	for _, s := range settings {
		sources[s.Key] = s
	}
	assert.Equal(t, SourceUser, sources["log.theme"].Source)
	assert.Equal(t, userPath, sources["log.theme"].SourcePath)
	assert.Equal(t, SourceProject, sources["catalog.debounce_ms"].Source)
	assert.Equal(t, SourceEnvironment, sources["cli.output_format"].Source)
	assert.Equal(t, "FRAGFMT_CLI_OUTPUT_FORMAT", sources["cli.output_format"].SourcePath)
	assert.Equal(t, SourceDefault, sources["render.strict_kinds"].Source)
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "x", "y")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Empty(t, findProjectConfig(nested))

	path := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))
	assert.Equal(t, path, findProjectConfig(nested))
}
