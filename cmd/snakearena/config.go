package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings after merging the config file over the defaults.
Redirect the output to ~/.snakearena/settings.yaml to start a custom config.

Examples:
  snakearena config
  snakearena config --defaults > ~/.snakearena/settings.yaml
  snakearena config --config ./tournament.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
