package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/teranos/fragfmt/compiler"
	"github.com/teranos/fragfmt/errors"
)

// PrintError writes err for a terminal user. Compile errors get their
// positional context and suggestions; other errors get any hints attached.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var ce *compiler.Error
	if errors.As(err, &ce) {
		if err != error(ce) {
			fmt.Fprintln(w, pterm.Red(err.Error()))
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, ce.FormatError(compiler.ErrorContextTerminal))
		return
	}

	fmt.Fprintln(w, pterm.Red("Error: ")+err.Error())
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		for _, hint := range hints {
			fmt.Fprintf(w, "  %s %s\n", pterm.Yellow("hint:"), hint)
		}
	}
}
