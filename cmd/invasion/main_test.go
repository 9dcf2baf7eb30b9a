package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestModeFor(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		piercing bool
		want     string
	}{
		{"default", nil, false, "invasion"},
		{"piercing flag", nil, true, "invasion_piercing"},
		{"explicit mode", []string{"invasion_piercing"}, false, "invasion_piercing"},
		{"explicit standard with flag", []string{"invasion"}, true, "invasion_piercing"},
		{"unknown kept", []string{"other"}, true, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modeFor(tt.args, tt.piercing); got != tt.want {
				t.Errorf("modeFor(%v, %v) = %q, want %q", tt.args, tt.piercing, got, tt.want)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("seed") != nil {
		t.Error("root should not expose --seed")
	}
	for _, name := range []string{"fps", "config", "difficulty", "log"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root is missing --%s", name)
		}
	}

	for _, cmd := range []string{"play", "window", "menu"} {
		c, _, err := rootCmd.Find([]string{cmd})
		if err != nil {
			t.Fatalf("Find(%s) failed: %v", cmd, err)
		}
		f := c.Flags().Lookup("volume")
		if f == nil {
			t.Errorf("%s is missing --volume", cmd)
			continue
		}
		if f.DefValue != "0.35" {
			t.Errorf("%s --volume default = %s, want 0.35", cmd, f.DefValue)
		}
	}
}

func TestOpenSoundDisabled(t *testing.T) {
	logger := log.New(io.Discard)
	tests := []struct {
		name    string
		enabled bool
		volume  float64
	}{
		{"flag off", false, 0.5},
		{"muted", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if sm, ok := openSound(tt.enabled, tt.volume, logger); ok || sm != nil {
				t.Error("Expected no sound manager")
			}
		})
	}
}

func TestRuntimeConfigUsesFPS(t *testing.T) {
	old := flagFPS
	defer func() { flagFPS = old }()
	flagFPS = 30

	cfg := runtimeConfig(100, 40)
	if cfg.ScreenW != 100 || cfg.ScreenH != 40 || cfg.TickRate != 30 {
		t.Errorf("runtimeConfig() = %+v", cfg)
	}
}
