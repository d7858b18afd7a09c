package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-surf/internal/config"
	"github.com/vovakirdan/tui-surf/internal/games/surf"
)

var flagTicks int

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the autopilot without a terminal",
	Long: `Simulate a run with a built-in autopilot and print a YAML report.

The same config, --seed and --ticks always produce the same report,
including the state digest, which makes this handy for checking that
physics changes are intentional.

Examples:
  surf headless
  surf headless --seed 7 --ticks 36000
  surf headless --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of simulation ticks to run")
}

func runHeadless(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	report, err := surf.RunHeadless(cfg, seed, flagTicks, flagFPS)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// effectiveConfig loads the surf config the way a game would and applies
// the --difficulty preset.
func effectiveConfig() (config.SurfConfig, error) {
	cfg, err := config.LoadSurf(flagConfig)
	if err != nil {
		return config.SurfConfig{}, fmt.Errorf("loading config: %w", err)
	}
	config.ApplySurfPreset(&cfg, config.ParsePreset(flagDifficulty))
	return cfg, nil
}
