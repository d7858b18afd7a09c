package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-surf/internal/core"
	"github.com/vovakirdan/tui-surf/internal/games/surf"
	"github.com/vovakirdan/tui-surf/internal/platform/tui"
	"github.com/vovakirdan/tui-surf/internal/registry"
	"github.com/vovakirdan/tui-surf/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play surf",
	Long: `Start surfing right away.

Controls:
  A/D, Left/Right  - Carve back / forward
  W/S, Up/Down     - Pump up / drop down
  Space            - Jump (or jump off a grind)
  Z                - 360 FLIP (in the air)
  X                - SURF GRAB (in the air)
  Tab              - High scores
  P/Esc            - Pause (B while paused: back)
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Calm sea that builds with your score
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  surf play
  surf play --difficulty hard
  surf play --config ./my-surf.yaml
  surf play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Surfing works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(surf.ID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
