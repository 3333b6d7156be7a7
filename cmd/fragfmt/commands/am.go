package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/fragfmt/am"
	"github.com/teranos/fragfmt/display"
	"github.com/teranos/fragfmt/errors"
)

func newAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Show and validate fragfmt configuration",
		Long: `Display and validate fragfmt configuration.

Configuration sources (in order of precedence):
1. Environment variables (FRAGFMT_* prefix, e.g. FRAGFMT_RENDER_STRICT_KINDS)
2. Project config (fragfmt.toml, searched upward from the working directory)
3. User config (~/.fragfmt/fragfmt.toml)
4. Default values

Examples:
  fragfmt am show                  # Show current configuration
  fragfmt am show --format json    # Show configuration in JSON format
  fragfmt am sources               # Show where each setting came from
  fragfmt am validate              # Validate current configuration`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRawConfig(cmd)
			if err != nil {
				return err
			}
			return display.Output(cmd.OutOrStdout(), cfg, display.ResolveFormat(cmd, display.FormatTOML))
		},
	}
	show.Flags().String("format", "", "Output format: toml, json, yaml (default: toml)")

	sources := &cobra.Command{
		Use:   "sources",
		Short: "Show each effective setting and where it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := am.Introspect()
			if err != nil {
				return err
			}
			if format := display.ResolveFormat(cmd, ""); format != "" {
				return display.Output(cmd.OutOrStdout(), map[string][]am.SettingInfo{"settings": settings}, format)
			}

			data := pterm.TableData{{"KEY", "VALUE", "SOURCE"}}
			for _, s := range settings {
				source := string(s.Source)
				if s.SourcePath != "" && s.Source != am.SourceDefault {
					source += " (" + s.SourcePath + ")"
				}
				data = append(data, []string{s.Key, fmt.Sprint(s.Value), source})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(cmd.OutOrStdout()).Render()
		},
	}
	sources.Flags().String("format", "", "Output format: json, yaml, toml (default: table)")

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRawConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return errors.Wrap(err, "configuration is invalid")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s configuration is valid\n", pterm.Green("✓"))
			return nil
		},
	}

	cmd.AddCommand(show, sources, validate)
	return cmd
}

// loadRawConfig loads configuration without validating it
func loadRawConfig(cmd *cobra.Command) (*am.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return am.LoadFromFile(path)
	}
	return am.Load()
}
