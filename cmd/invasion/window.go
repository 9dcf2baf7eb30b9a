package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/gui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var flagFullscreen bool

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with pixel-sized sprites.

Controls:
  Left/Right, A/D   - Move
  Space             - Fire
  Enter or click    - Start a new game
  P                 - Pause
  Q or close        - Quit

Examples:
  invasion window
  invasion window --fullscreen
  invasion window --piercing --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagPiercing, "piercing", false, "Bullets pass through aliens")
	windowCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", defaultVolume, "Sound effect volume from 0 to 1")
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Fill the whole screen")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := modeFor(args, flagPiercing)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invasion list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	applyGameFlags(logger, config.ProfileWindow)

	created, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}
	game, ok := created.(*invasion.Game)
	if !ok {
		fatal("mode %q cannot run in a window", gameID)
	}

	cfg, err := config.LoadInvasion(flagConfig, config.ProfileWindow)
	if err != nil {
		cfg = config.DefaultInvasionConfig(config.ProfileWindow)
	}

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open score board", "error", err)
		store = nil
	}

	opts := gui.Options{
		Store:      store,
		Logger:     logger,
		Fullscreen: flagFullscreen || cfg.Screen.Fullscreen,
	}
	if sm, ok := openSound(flagSound, flagVolume, logger); ok {
		defer sm.Cleanup()
		opts.Sound = sm
	}

	logger.Info("starting", "mode", gameID, "width", cfg.Screen.Width, "height", cfg.Screen.Height, "fullscreen", opts.Fullscreen)
	runErr := gui.Run(game, runtimeConfig(cfg.Screen.Width, cfg.Screen.Height), opts)

	if store != nil {
		_ = store.Close()
	}
	if runErr != nil {
		logger.Error("window session failed", "error", runErr)
		fatal("%v", runErr)
	}
}
