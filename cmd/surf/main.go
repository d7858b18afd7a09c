// surf is a terminal surfing arcade: ride waves, land tricks, grind crests.
//
// Usage:
//
//	surf                  - Play (same as "surf play")
//	surf play             - Play with the difficulty from --difficulty
//	surf menu             - Pick a difficulty interactively, then play
//	surf serve            - Start SSH server for remote play
//	surf scores           - Show high scores and run statistics
//	surf headless         - Run the autopilot without a terminal and print a report
//	surf config           - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom surf config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-surf/internal/games/surf"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "surf",
	Short: "Surf - ride waves in your terminal",
	Long: `Surf is a terminal arcade game. Carve across the beach, ride the
swells, jump off crests and land tricks for points.

Available commands:
  play      - Play right away (default)
  menu      - Pick a difficulty, view scores, play again
  serve     - Start SSH server for remote play
  scores    - View high scores
  headless  - Autopilot run without a terminal
  config    - Print the effective config

Examples:
  surf
  surf play --difficulty hard
  surf menu
  surf serve --ssh :2222
  surf headless --ticks 6000 --seed 42`,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom surf config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the shared logger from the global flags and hands it
// to the game package.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "surf",
		Level:           level,
	})
	surf.SetLogger(logger)
	surf.SetConfigPath(flagConfig)
	surf.SetDifficultyPreset(flagDifficulty)
	return nil
}
