package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	flagPiercing bool
	flagSound    bool
	flagVolume   float64
)

const defaultVolume = 0.35

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The field fills the terminal window.

Controls:
  Left/Right, A/D, H/L  - Move
  Space/Up/W            - Fire
  Enter/S or click Play - Start a new game
  P                     - Pause
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slower fleet, more ships
  normal - Default settings
  hard   - Faster fleet, fewer ships
  fixed  - No speed-up between levels

Examples:
  invasion play
  invasion play invasion_piercing
  invasion play --piercing --sound --volume 0.2
  invasion play --difficulty hard --config ./my-invasion.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPiercing, "piercing", false, "Bullets pass through aliens")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", defaultVolume, "Sound effect volume from 0 to 1")
}

// modeFor picks the registered mode from the positional argument and --piercing.
func modeFor(args []string, piercing bool) string {
	mode := "invasion"
	if len(args) > 0 {
		mode = args[0]
	}
	if piercing && mode == "invasion" {
		mode = "invasion_piercing"
	}
	return mode
}

func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := modeFor(args, flagPiercing)
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invasion list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	applyGameFlags(logger, config.ProfileTerminal)

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

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
	logger.Info("starting", "mode", gameID, "width", w, "height", h, "fps", flagFPS)
	_, runErr := tui.Run(game, runtimeConfig(w, h), opts)

	if store != nil {
		_ = store.Close()
	}
	if runErr != nil {
		logger.Error("terminal session failed", "error", runErr)
		fatal("running game: %v", runErr)
	}
}
