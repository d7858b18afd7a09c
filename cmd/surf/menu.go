package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-surf/internal/games/surf"
	"github.com/vovakirdan/tui-surf/internal/platform/tui"
	"github.com/vovakirdan/tui-surf/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then surf",
	Long: `Start surf in interactive menu mode.

Pick a difficulty with the arrow keys or j/k and press Enter.
Pause a run with P and press B to come back here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start surfing
  Tab          - High scores
  Q            - Quit

Examples:
  surf menu
  surf menu --fps 30
  surf menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, surf.ID, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, surf.ID, "Surf", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(surf.ID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if g, ok := game.(*surf.Game); ok {
			g.SetPreset(menuResult.Preset)
		}

		final, err := tui.RunModel(game, store, cfg, tui.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !final.BackToMenu() {
			return nil
		}
	}
}
