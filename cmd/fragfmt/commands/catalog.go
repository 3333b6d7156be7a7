package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/fragfmt/am"
	"github.com/teranos/fragfmt/catalog"
	"github.com/teranos/fragfmt/display"
	"github.com/teranos/fragfmt/errors"
	"github.com/teranos/fragfmt/logger"
)

// entryInfo is the machine-readable form of a catalog entry
type entryInfo struct {
	Name          string `json:"name" yaml:"name" toml:"name"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Parameterized bool   `json:"parameterized" yaml:"parameterized" toml:"parameterized"`
	Path          string `json:"path" yaml:"path" toml:"path"`
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with message catalogs",
		Long: `Load named messages from TOML or YAML catalog files.

Catalog files come from --file, or from catalog.paths in fragfmt.toml.

Examples:
  fragfmt catalog list -f messages.toml
  fragfmt catalog render welcome ada -f messages.toml
  fragfmt catalog check -f messages.toml -f extra.yaml
  fragfmt catalog watch -f messages.toml`,
	}
	cmd.PersistentFlags().StringSliceP("file", "f", nil, "Catalog file (repeatable)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog messages",
		Args:  cobra.NoArgs,
		RunE:  runCatalogList,
	}
	list.Flags().String("format", "", "Output format: json, yaml, toml (default: table)")

	cmd.AddCommand(list)
	cmd.AddCommand(&cobra.Command{
		Use:   "render <name> [value...]",
		Short: "Render a catalog message",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCatalogRender,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate catalog files and report every problem",
		Args:  cobra.NoArgs,
		RunE:  runCatalogCheck,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Keep catalogs loaded and report reloads until interrupted",
		Args:  cobra.NoArgs,
		RunE:  runCatalogWatch,
	})
	return cmd
}

// catalogPaths returns --file values, falling back to catalog.paths
func catalogPaths(cmd *cobra.Command, cfg *am.Config) ([]string, error) {
	paths, _ := cmd.Flags().GetStringSlice("file")
	if len(paths) == 0 {
		paths = cfg.Catalog.Paths
	}
	if len(paths) == 0 {
		return nil, errors.WithHint(errors.New("no catalog files"),
			"pass --file or set catalog.paths in fragfmt.toml")
	}
	return paths, nil
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, *am.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	paths, err := catalogPaths(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	c := catalog.New(catalog.WithEngine(newEngine(cfg)))
	if err := c.Load(paths...); err != nil {
		return nil, nil, err
	}
	if logger.ShouldOutput(verbosity(cmd), logger.OutputCatalog) {
		fmt.Fprintf(cmd.ErrOrStderr(), "loaded %d message(s) from %d file(s)\n", len(c.Names()), len(paths))
	}
	return c, cfg, nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	c, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	var infos []entryInfo
	for _, name := range c.Names() {
		entry, err := c.Lookup(name)
		if err != nil {
			return err
		}
		infos = append(infos, entryInfo{
			Name:          entry.Name,
			Description:   entry.Description,
			Parameterized: entry.Parameterized(),
			Path:          entry.Path,
		})
	}

	if format := display.ResolveFormat(cmd, ""); format != "" {
		return display.Output(cmd.OutOrStdout(), map[string][]entryInfo{"messages": infos}, format)
	}

	data := pterm.TableData{{"NAME", "PARAMS", "DESCRIPTION"}}
	for _, info := range infos {
		params := ""
		if info.Parameterized {
			params = "yes"
		}
		data = append(data, []string{info.Name, params, info.Description})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(cmd.OutOrStdout()).Render()
}

func runCatalogRender(cmd *cobra.Command, args []string) error {
	c, cfg, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	out, err := c.Render(args[0], decodeValues(args[1:], typedArgs(cmd, cfg))...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runCatalogCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	paths, err := catalogPaths(cmd, cfg)
	if err != nil {
		return err
	}

	c := catalog.New(catalog.WithEngine(newEngine(cfg)))
	problems, valid := c.Check(paths...)

	if format := display.ResolveFormat(cmd, ""); format != "" {
		if err := display.Output(cmd.OutOrStdout(), map[string]any{"valid": valid, "problems": problems}, format); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		for _, p := range problems {
			where := p.Path
			if p.Message != "" {
				where += " [" + p.Message + "]"
			}
			fmt.Fprintf(w, "%s %s\n", pterm.Red("✗"), where)
			fmt.Fprintf(w, "    %s\n", p.Detail)
		}
		fmt.Fprintf(w, "%s %d valid message(s), %d problem(s)\n", pterm.Green("✓"), valid, len(problems))
	}

	if len(problems) > 0 {
		return errors.Newf("%d catalog problem(s)", len(problems))
	}
	return nil
}

func runCatalogWatch(cmd *cobra.Command, args []string) error {
	c, cfg, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	w, err := catalog.NewWatcher(c, cfg.Debounce())
	if err != nil {
		return err
	}
	defer w.Stop()

	out := cmd.OutOrStdout()
	w.OnReload(func(c *catalog.Catalog) error {
		fmt.Fprintf(out, "%s reloaded %d message(s)\n", pterm.Green("↻"), len(c.Names()))
		return nil
	})
	w.Start()

	fmt.Fprintf(out, "watching %d file(s) with %d message(s), press Ctrl+C to stop\n", len(c.Paths()), len(c.Names()))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
