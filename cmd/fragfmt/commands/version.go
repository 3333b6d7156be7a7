package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/fragfmt/display"
	"github.com/teranos/fragfmt/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show fragfmt version information",
		Long:  `Display version, build time, commit hash, and platform information for the fragfmt binary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()

			if display.ResolveFormat(cmd, "") == display.FormatJSON {
				return display.Output(cmd.OutOrStdout(), info, display.FormatJSON)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, info.String())
			fmt.Fprintf(w, "Platform: %s\n", info.Platform)
			fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
	return cmd
}
