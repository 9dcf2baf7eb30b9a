package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyInvasionPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyInvasionPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Dynamic.AlienSpeed *= 0.75
	case DifficultyHard:
		cfg.Ship.Limit = 2
		cfg.Bullet.Allowed = 2
		cfg.Dynamic.AlienSpeed *= 1.5
	case DifficultyFixed:
		cfg.Scaling.SpeedupScale = 1
		cfg.Scaling.ScoreScale = 1
	}
}

// Dynamic is the subset of settings that is reset at the start of every
// game and scaled at every level-up.
type Dynamic struct {
	AlienSpeed  float64
	BulletSpeed float64
	ShipSpeed   float64
	AlienPoints int

	base    DynamicBase
	scaling ScalingConfig
}

// NewDynamic creates dynamic settings initialized to the base values.
func NewDynamic(base DynamicBase, scaling ScalingConfig) *Dynamic {
	d := &Dynamic{base: base, scaling: scaling}
	d.Reset()
	return d
}

// Reset restores the starting speeds and point value.
func (d *Dynamic) Reset() {
	d.AlienSpeed = d.base.AlienSpeed
	d.BulletSpeed = d.base.BulletSpeed
	d.ShipSpeed = d.base.ShipSpeed
	d.AlienPoints = d.base.AlienPoints
}

// IncreaseSpeed scales all three speeds by the speedup factor and the alien
// point value by the score factor, flooring points to an integer.
func (d *Dynamic) IncreaseSpeed() {
	d.AlienSpeed *= d.scaling.SpeedupScale
	d.BulletSpeed *= d.scaling.SpeedupScale
	d.ShipSpeed *= d.scaling.SpeedupScale
	d.AlienPoints = int(math.Floor(float64(d.AlienPoints) * d.scaling.ScoreScale))
}
