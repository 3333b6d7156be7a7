// Package commands implements the fragfmt command line.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teranos/fragfmt"
	"github.com/teranos/fragfmt/am"
	"github.com/teranos/fragfmt/errors"
	"github.com/teranos/fragfmt/logger"
)

// NewRootCmd builds the fragfmt command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fragfmt",
		Short: "Build and render printf-style formats from literal fragments",
		Long: `fragfmt - Build printf-style formats from interleaved fragments and values.

Each argument after the first literal is either a value or another literal.
A specifier may only end a literal, where it binds the next argument.
%N reuses the Nth bound specifier and its value; %% is a literal percent.

Value arguments are read as YAML scalars (5 is an int, 2.5 a float, true a
bool); quote them to force a string, or pass --raw-args.

Examples:
  fragfmt render 'Index %04d' 5                     # Index 0005
  fragfmt render 'Option: %s' hi ' repeat: %1'      # Option: hi repeat: hi
  fragfmt compile 'Multiple (%d' 2 '), %s' safe!    # show format and options
  fragfmt eval "'Step %d' 3 ' of %d' 10"            # split one line like a shell
  fragfmt catalog render greeting -f messages.toml  # render a catalog entry`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")

			jsonLogs := false
			cfg, cfgErr := loadConfig(cmd)
			if cfgErr == nil {
				jsonLogs = cfg.Log.JSON
				logger.SetTheme(cfg.GetLogTheme())
			}

			if err := logger.InitializeWithWriter(cmd.ErrOrStderr(), jsonLogs, verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}

			if cfgErr == nil && logger.ShouldOutput(verbosity, logger.OutputConfig) {
				w := cmd.ErrOrStderr()
				fmt.Fprintf(w, "verbosity: %s, %s [%s]\n", logger.LevelName(verbosity),
					logger.VerbosityDescription(verbosity), strings.Join(logger.EnabledCategories(verbosity), " "))
				fmt.Fprintf(w, "config: %s\n", cfg)
			}
			return nil
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("raw-args", false, "Pass value arguments as strings instead of decoding them")
	root.PersistentFlags().Bool("json", false, "Machine-readable JSON output where supported")
	root.PersistentFlags().String("config", "", "Read configuration from this file only")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newCompileCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newAmCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig loads the --config file when given, else the merged configuration
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	var (
		cfg *am.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = am.LoadFromFile(path)
	} else {
		cfg, err = am.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}

// typedArgs reports whether value arguments should be decoded
func typedArgs(cmd *cobra.Command, cfg *am.Config) bool {
	if raw, _ := cmd.Flags().GetBool("raw-args"); raw {
		return false
	}
	return cfg.CLI.TypedArgs
}

func newEngine(cfg *am.Config) *fragfmt.Engine {
	return fragfmt.NewEngine(
		fragfmt.WithStrictKinds(cfg.Render.StrictKinds),
		fragfmt.WithLogger(logger.ComponentLogger("fragfmt")),
	)
}
