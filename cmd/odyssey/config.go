package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-odyssey/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The config is resolved in this order:
  --config <path>
  ~/.odyssey/configs/odyssey.yaml
  ./configs/odyssey.yaml
  built-in defaults

--difficulty is applied on top. Redirect the output to a file to start
your own config:

  odyssey config > ~/.odyssey/configs/odyssey.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
