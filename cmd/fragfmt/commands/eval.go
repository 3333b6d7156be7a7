package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/teranos/fragfmt"
	"github.com/teranos/fragfmt/am"
	"github.com/teranos/fragfmt/catalog"
	"github.com/teranos/fragfmt/errors"
	"github.com/teranos/fragfmt/logger"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <line>",
		Short: "Render a whole format call given as one shell-quoted line",
		Long: `Split the line with shell quoting rules, then render it like 'render'.

Example:
  fragfmt eval "'Multiple (%d' 2 '), %s' safe!"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out, err := renderTokens(cmd, newEngine(cfg), decodeTokens(splitLine(args[0]), typedArgs(cmd, cfg)))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Render format calls read line by line from stdin",
		Long: `Read lines from stdin and render each one as 'eval' would. Blank lines
and lines starting with # are skipped. Failed lines are reported on stderr
and processing continues; the command fails if any line failed.

A line starting with @ renders a catalog message: "@greeting ada". Catalogs
come from --file or catalog.paths; with catalog.watch set they are reloaded
while the repl runs.

Example:
  printf '%s\n' "'Index %04d' 5" "'reuse %1'" | fragfmt repl
  printf '%s\n' "@greeting ada" | fragfmt repl -f messages.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			engine := newEngine(cfg)
			typed := typedArgs(cmd, cfg)

			cat, stop, err := replCatalog(cmd, cfg, engine)
			if err != nil {
				return err
			}
			defer stop()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			lines, failed := 0, 0
			for lineNo := 1; scanner.Scan(); lineNo++ {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				lines++

				var out string
				if strings.HasPrefix(line, "@") {
					out, err = renderCatalogLine(cat, line[1:], typed)
				} else {
					out, err = renderTokens(cmd, engine, decodeTokens(splitLine(line), typed))
				}
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "line %d: ", lineNo)
					PrintError(cmd.ErrOrStderr(), err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "failed to read input")
			}

			logger.Infow("repl finished", logger.FieldCount, lines, "failed", failed)
			if failed > 0 {
				return errors.Newf("%d of %d line(s) failed", failed, lines)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceP("file", "f", nil, "Catalog file for @name lines (repeatable)")
	return cmd
}

// replCatalog loads the repl's catalogs, if any, and starts a watcher on them
// when catalog.watch is set. The returned func releases the watcher.
func replCatalog(cmd *cobra.Command, cfg *am.Config, engine *fragfmt.Engine) (*catalog.Catalog, func(), error) {
	noop := func() {}

	paths, _ := cmd.Flags().GetStringSlice("file")
	if len(paths) == 0 {
		paths = cfg.Catalog.Paths
	}
	if len(paths) == 0 {
		return nil, noop, nil
	}

	c := catalog.New(catalog.WithEngine(engine))
	if err := c.Load(paths...); err != nil {
		return nil, noop, err
	}
	if !cfg.Catalog.Watch {
		return c, noop, nil
	}

	w, err := catalog.NewWatcher(c, cfg.Debounce())
	if err != nil {
		return nil, noop, err
	}
	w.Start()
	if logger.ShouldOutput(verbosity(cmd), logger.OutputCatalog) {
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %d catalog file(s), debounce %s\n", len(paths), cfg.Debounce())
	}
	return c, func() { _ = w.Stop() }, nil
}

// renderCatalogLine renders "name value..." against c
func renderCatalogLine(c *catalog.Catalog, line string, typed bool) (string, error) {
	if c == nil {
		return "", errors.WithHint(errors.New("no catalog loaded"),
			"pass --file or set catalog.paths in fragfmt.toml")
	}
	fields := splitLine(line)
	if len(fields) == 0 {
		return "", errors.New("missing catalog message name after @")
	}
	return c.Render(fields[0], decodeValues(fields[1:], typed)...)
}
