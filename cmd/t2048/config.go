package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration t2048 would run with, after the config file,
.env, T2048_* environment variables and command-line flags are applied.

Config search order:
  --config <path>
  ~/.t2048/config.yaml
  ./configs/t2048.yaml
  built-in defaults

Examples:
  t2048 config
  t2048 config --defaults > ~/.t2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	data, err := yaml.Marshal(app.cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
