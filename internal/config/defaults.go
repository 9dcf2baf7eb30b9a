package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invasion_window.yaml
var defaultWindowYAML []byte

//go:embed defaults/invasion_terminal.yaml
var defaultTerminalYAML []byte

// DefaultInvasionConfig returns the hardcoded configuration for a profile.
// It mirrors the embedded YAML and is used if the embed cannot be parsed.
func DefaultInvasionConfig(profile Profile) InvasionConfig {
	if profile == ProfileTerminal {
		return InvasionConfig{
			Screen: ScreenConfig{Width: 80, Height: 24, Button: Size{Width: 12, Height: 3}},
			Ship:   ShipConfig{Limit: 3, Width: 5, Height: 1},
			Bullet: BulletConfig{Width: 1, Height: 1, Allowed: 3},
			Alien:  AlienConfig{Width: 3, Height: 1, FleetDropSpeed: 1},
			Dynamic: DynamicBase{
				AlienSpeed:  0.1,
				BulletSpeed: 0.5,
				ShipSpeed:   0.5,
				AlienPoints: 50,
			},
			Scaling: ScalingConfig{SpeedupScale: 1.1, ScoreScale: 1.5},
			Respawn: RespawnConfig{Pause: 500 * time.Millisecond},
		}
	}

	return InvasionConfig{
		Screen: ScreenConfig{
			Width:   1000,
			Height:  600,
			BgColor: [3]int{230, 230, 230},
			Button:  Size{Width: 200, Height: 50},
		},
		Ship: ShipConfig{Limit: 3, Width: 60, Height: 48},
		Bullet: BulletConfig{
			Width:   3,
			Height:  15,
			Color:   [3]int{60, 60, 60},
			Allowed: 3,
		},
		Alien: AlienConfig{Width: 60, Height: 58, FleetDropSpeed: 10},
		Dynamic: DynamicBase{
			AlienSpeed:  1.0,
			BulletSpeed: 1.0,
			ShipSpeed:   1.5,
			AlienPoints: 50,
		},
		Scaling: ScalingConfig{SpeedupScale: 1.1, ScoreScale: 1.5},
		Respawn: RespawnConfig{Pause: 500 * time.Millisecond},
	}
}

// GetDefaultYAML returns the embedded default YAML for a profile.
func GetDefaultYAML(profile Profile) []byte {
	switch profile {
	case ProfileWindow:
		return defaultWindowYAML
	case ProfileTerminal:
		return defaultTerminalYAML
	default:
		return nil
	}
}
