// Package config provides YAML-based game configuration loading and the
// dynamic (per-level) settings for Alien Invasion.
package config

import "time"

// Profile selects the unit system of a configuration: pixels for the window
// frontend, character cells for the terminal frontend.
type Profile string

const (
	ProfileWindow   Profile = "window"
	ProfileTerminal Profile = "terminal"
)

// InvasionConfig contains the static configuration for Alien Invasion.
// It is set once per process; the dynamic subset lives in Dynamic.
type InvasionConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Ship    ShipConfig    `yaml:"ship"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Alien   AlienConfig   `yaml:"alien"`
	Dynamic DynamicBase   `yaml:"dynamic"`
	Scaling ScalingConfig `yaml:"scaling"`
	Respawn RespawnConfig `yaml:"respawn"`
}

// ScreenConfig defines the field. Width and height are ignored by the
// terminal frontend, which uses the terminal size instead.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	BgColor    [3]int `yaml:"bg_color"`
	Button     Size   `yaml:"play_button"`
}

// Size is a width/height pair in world units.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Limit  int `yaml:"limit"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BulletConfig defines bullets.
type BulletConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Color    [3]int `yaml:"color"`
	Allowed  int    `yaml:"allowed"`
	Piercing bool   `yaml:"piercing"`
}

// AlienConfig defines aliens and the fleet drop.
type AlienConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	FleetDropSpeed float64 `yaml:"fleet_drop_speed"`
}

// DynamicBase holds the starting values of the dynamic settings.
type DynamicBase struct {
	AlienSpeed  float64 `yaml:"alien_speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	ShipSpeed   float64 `yaml:"ship_speed"`
	AlienPoints int     `yaml:"alien_points"`
}

// ScalingConfig defines the level-up multipliers.
type ScalingConfig struct {
	SpeedupScale float64 `yaml:"speedup_scale"`
	ScoreScale   float64 `yaml:"score_scale"`
}

// RespawnConfig defines the cooldown after losing a ship.
type RespawnConfig struct {
	Pause time.Duration `yaml:"pause"`
}

// RespawnTicks converts the respawn pause into whole simulation ticks,
// rounding up so a non-zero pause always freezes at least one tick.
func (c InvasionConfig) RespawnTicks(tickRate int) int {
	if c.Respawn.Pause <= 0 || tickRate <= 0 {
		return 0
	}
	scaled := c.Respawn.Pause * time.Duration(tickRate)
	return int((scaled + time.Second - 1) / time.Second)
}

// Validate replaces nonsensical values with safe ones. The simulation must
// never fail on configuration, so nothing here returns an error.
func (c *InvasionConfig) Validate() {
	if c.Ship.Limit < 1 {
		c.Ship.Limit = 1
	}
	c.Ship.Width = atLeast(c.Ship.Width, 1)
	c.Ship.Height = atLeast(c.Ship.Height, 1)
	c.Bullet.Width = atLeast(c.Bullet.Width, 1)
	c.Bullet.Height = atLeast(c.Bullet.Height, 1)
	c.Alien.Width = atLeast(c.Alien.Width, 1)
	c.Alien.Height = atLeast(c.Alien.Height, 1)
	c.Screen.Button.Width = atLeast(c.Screen.Button.Width, 1)
	c.Screen.Button.Height = atLeast(c.Screen.Button.Height, 1)
	if c.Bullet.Allowed < 0 {
		c.Bullet.Allowed = 0
	}
	if c.Alien.FleetDropSpeed < 0 {
		c.Alien.FleetDropSpeed = 0
	}
	if c.Dynamic.AlienPoints < 0 {
		c.Dynamic.AlienPoints = 0
	}
	if c.Scaling.SpeedupScale <= 0 {
		c.Scaling.SpeedupScale = 1
	}
	if c.Scaling.ScoreScale <= 0 {
		c.Scaling.ScoreScale = 1
	}
	if c.Respawn.Pause < 0 {
		c.Respawn.Pause = 0
	}
}

func atLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}
