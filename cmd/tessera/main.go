package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vango-dev/tessera/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	fd := os.Stderr.Fd()
	errors.SetColor(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))

	if err := newRootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tessera",
		Short: "Serve and inspect declarative views",
		Long: `Tessera composes typed views into render trees and keeps a live
document in sync with them.

The bundled demo is a todo list. Use "serve" to run it over WebSocket,
"render" to print its HTML or mutation log, and "init" to write a
tessera.json with the defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to tessera.json (default: nearest one above the working directory)")

	root.AddCommand(
		serveCmd(),
		renderCmd(),
		initCmd(),
		versionCmd(),
	)
	return root
}
