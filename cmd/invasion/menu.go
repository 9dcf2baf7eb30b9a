package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press Esc or B in a game to return to the menu. Scores of this
session are kept on the scoreboard (Tab) until you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  invasion menu
  invasion menu --fps 30 --sound`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", defaultVolume, "Sound effect volume from 0 to 1")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	applyGameFlags(logger, config.ProfileTerminal)

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open score board", "error", err)
		store = nil
	}

	opts := tui.Options{Store: store, Logger: logger}
	if sm, ok := openSound(flagSound, flagVolume, logger); ok {
		defer sm.Cleanup()
		opts.Sound = sm
	}

	w, h := terminalSize()
	cfg := runtimeConfig(w, h)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "mode", menuResult.GameID, "error", err)
			continue
		}

		result, err := tui.Run(game, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !result.Back {
			break
		}
	}

	if store != nil {
		_ = store.Close()
	}
}
