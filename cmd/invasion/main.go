// invasion is Alien Invasion: shoot down a descending alien fleet, in the
// terminal or in a desktop window.
//
// Usage:
//
//	invasion list              - List available modes
//	invasion play [mode]       - Play in the terminal
//	invasion window [mode]     - Play in a desktop window
//	invasion menu              - Pick modes interactively, with a scoreboard
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--config <path>        - Custom invasion config YAML
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--log <path>           - Write a log file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - shoot down the fleet before it lands",
	Long: `Alien Invasion is a fixed-shooter arcade game. A fleet of aliens
marches across the field and drops toward your ship; clear it to advance
a level, and lose a ship whenever an alien reaches you or the ground.

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive mode picker with a session scoreboard

Examples:
  invasion play
  invasion play --piercing --difficulty hard
  invasion window --fullscreen
  invasion menu --fps 30`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom invasion config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write log output to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger builds the process logger. Terminal frontends own the screen,
// so without --log they log nowhere; the window logs to stderr.
func newLogger(stderrFallback bool) (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	switch {
	case flagLogPath != "":
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case stderrFallback:
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "invasion",
	})
	if flagLogPath != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// applyGameFlags hands the shared flags to the game package and reports a
// config file that will be ignored.
func applyGameFlags(logger *log.Logger, profile config.Profile) {
	invasion.SetProfile(profile)
	invasion.SetConfigPath(flagConfig)
	invasion.SetDifficultyPreset(flagDifficulty)

	if _, err := config.LoadInvasion(flagConfig, profile); err != nil {
		logger.Warn("using default config", "profile", profile, "error", err)
	}
}

func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
	}
}

// openSound starts audio when requested. A failure leaves the game silent.
func openSound(enabled bool, volume float64, logger *log.Logger) (*audio.SoundManager, bool) {
	if !enabled || volume <= 0 {
		return nil, false
	}
	sm := audio.NewSoundManager()
	sm.SetVolume(volume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, false
	}
	return sm, true
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
