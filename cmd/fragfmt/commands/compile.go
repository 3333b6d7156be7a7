package commands

import (
	"github.com/spf13/cobra"
	"github.com/teranos/fragfmt/display"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <literal> [token...]",
		Short: "Show the compiled format string and options",
		Long: `Compile the arguments without rendering and print the format string,
the options passed to the formatter, and the bound values and specifiers
available to back-references.

Examples:
  fragfmt compile 'Option: %s' hi ' repeat: %1'
  fragfmt compile 'Index %04d' 5 --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			tokens := decodeTokens(args, typedArgs(cmd, cfg))
			f, err := newEngine(cfg).New(tokens[0], tokens[1:]...)
			if err != nil {
				return err
			}

			format := display.ResolveFormat(cmd, cfg.GetOutputFormat())
			return display.Output(cmd.OutOrStdout(), f.Raw(), format)
		},
	}
	cmd.Flags().String("format", "", "Output format: json, yaml, toml (default from cli.output_format)")
	return cmd
}
