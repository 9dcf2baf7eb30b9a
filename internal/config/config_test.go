package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, profile := range []Profile{ProfileWindow, ProfileTerminal} {
		t.Run(string(profile), func(t *testing.T) {
			var cfg InvasionConfig
			if err := yaml.Unmarshal(GetDefaultYAML(profile), &cfg); err != nil {
				t.Fatalf("embedded YAML does not parse: %v", err)
			}
			if want := DefaultInvasionConfig(profile); !reflect.DeepEqual(cfg, want) {
				t.Errorf("embedded YAML = %+v\nhardcoded = %+v", cfg, want)
			}
		})
	}
}

func TestLoadInvasionCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bullet:\n  allowed: 7\n  piercing: true\nrespawn:\n  pause: 2s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvasion(path, ProfileWindow)
	if err != nil {
		t.Fatalf("LoadInvasion() failed: %v", err)
	}

	if cfg.Bullet.Allowed != 7 || !cfg.Bullet.Piercing {
		t.Errorf("bullet overrides not applied: %+v", cfg.Bullet)
	}
	if cfg.Respawn.Pause != 2*time.Second {
		t.Errorf("Respawn.Pause = %v, expected 2s", cfg.Respawn.Pause)
	}
	// Keys absent from the file keep the profile defaults
	if cfg.Alien.Width != 60 || cfg.Screen.Width != 1000 {
		t.Errorf("defaults lost for unspecified keys: alien=%+v screen=%+v", cfg.Alien, cfg.Screen)
	}
}

func TestLoadInvasionCustomPathErrors(t *testing.T) {
	if _, err := LoadInvasion(filepath.Join(t.TempDir(), "missing.yaml"), ProfileWindow); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("ship: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvasion(path, ProfileWindow); err == nil {
		t.Error("unparsable custom config should be an error")
	}
}

func TestValidateClampsNonsense(t *testing.T) {
	cfg := InvasionConfig{
		Ship:    ShipConfig{Limit: -2, Width: 0, Height: -1},
		Bullet:  BulletConfig{Allowed: -1},
		Alien:   AlienConfig{Width: 0, Height: 0, FleetDropSpeed: -5},
		Dynamic: DynamicBase{AlienPoints: -10},
		Scaling: ScalingConfig{SpeedupScale: 0, ScoreScale: -1},
		Respawn: RespawnConfig{Pause: -time.Second},
	}
	cfg.Validate()

	if cfg.Ship.Limit != 1 || cfg.Ship.Width != 1 || cfg.Ship.Height != 1 {
		t.Errorf("ship not clamped: %+v", cfg.Ship)
	}
	if cfg.Bullet.Allowed != 0 || cfg.Bullet.Width != 1 {
		t.Errorf("bullet not clamped: %+v", cfg.Bullet)
	}
	if cfg.Alien.Width != 1 || cfg.Alien.FleetDropSpeed != 0 {
		t.Errorf("alien not clamped: %+v", cfg.Alien)
	}
	if cfg.Dynamic.AlienPoints != 0 {
		t.Errorf("AlienPoints = %d, expected 0", cfg.Dynamic.AlienPoints)
	}
	if cfg.Scaling.SpeedupScale != 1 || cfg.Scaling.ScoreScale != 1 {
		t.Errorf("scaling not clamped: %+v", cfg.Scaling)
	}
	if cfg.Respawn.Pause != 0 {
		t.Errorf("Respawn.Pause = %v, expected 0", cfg.Respawn.Pause)
	}
}

func TestRespawnTicks(t *testing.T) {
	tests := []struct {
		pause    time.Duration
		tickRate int
		want     int
	}{
		{500 * time.Millisecond, 60, 30},
		{500 * time.Millisecond, 30, 15},
		{10 * time.Millisecond, 60, 1}, // rounds up
		{0, 60, 0},
		{time.Second, 0, 0},
	}

	for _, tc := range tests {
		cfg := InvasionConfig{Respawn: RespawnConfig{Pause: tc.pause}}
		if got := cfg.RespawnTicks(tc.tickRate); got != tc.want {
			t.Errorf("RespawnTicks(%v @ %d) = %d, expected %d", tc.pause, tc.tickRate, got, tc.want)
		}
	}
}
