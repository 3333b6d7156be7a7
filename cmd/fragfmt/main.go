package main

import (
	"context"
	"os"

	"github.com/teranos/fragfmt/cmd/fragfmt/commands"
	"github.com/teranos/fragfmt/logger"
)

func main() {
	err := commands.NewRootCmd().ExecuteContext(context.Background())
	logger.Cleanup()
	if err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
