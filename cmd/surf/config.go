package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config",
	Long: `Print the surf config YAML after applying --config and --difficulty.

The output is a complete config and can be saved as a starting point:
  surf config > ~/.arcade/configs/surf.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	out, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
