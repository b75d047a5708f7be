package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-explorer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

Lookup order:
  1. --config path
  2. ~/.explorer/configs/explorer.yaml
  3. ./configs/explorer.yaml
  4. built-in defaults

Redirect the output to start a custom configuration:
  explorer config > ~/.explorer/configs/explorer.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
