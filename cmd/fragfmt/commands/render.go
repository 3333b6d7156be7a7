package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/fragfmt"
	"github.com/teranos/fragfmt/errors"
	"github.com/teranos/fragfmt/logger"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <literal> [token...]",
		Short: "Compile and render a format call",
		Long: `Compile the arguments into a format string and options, then render it.

Examples:
  fragfmt render 'Index %s' 5                   # Index 5
  fragfmt render 'Escaped: %%s'                 # Escaped: %s
  fragfmt render '%5.1f' 3.14159 ' rounds to %1'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out, err := renderTokens(cmd, newEngine(cfg), decodeTokens(args, typedArgs(cmd, cfg)))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// renderTokens compiles and renders one token list, reporting the compiled
// form and timing on stderr at higher verbosity.
func renderTokens(cmd *cobra.Command, engine *fragfmt.Engine, tokens []any) (string, error) {
	if len(tokens) == 0 {
		return "", errors.New("nothing to render")
	}

	started := time.Now()
	f, err := engine.New(tokens[0], tokens[1:]...)
	if err != nil {
		return "", err
	}

	v := verbosity(cmd)
	if logger.ShouldOutput(v, logger.OutputCompiled) {
		printCompiled(cmd.ErrOrStderr(), f.Raw())
	}

	out, err := f.Render()
	if err != nil {
		return "", err
	}

	if logger.ShouldOutput(v, logger.OutputTiming) {
		fmt.Fprintln(cmd.ErrOrStderr(), pterm.Gray(fmt.Sprintf("rendered in %s", time.Since(started).Round(time.Microsecond))))
	}
	return out, nil
}

func printCompiled(w io.Writer, raw fragfmt.Raw) {
	fmt.Fprintf(w, "%s %q\n", pterm.LightCyan("format: "), raw.Format)
	fmt.Fprintf(w, "%s %v\n", pterm.LightCyan("options:"), raw.Options)
}
