package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tessera/internal/config"
)

// loadConfig reads --config when given, otherwise the nearest tessera.json.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFile(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Discover(wd)
}
