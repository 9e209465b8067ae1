// Package config provides YAML-based game configuration loading,
// difficulty presets and validation for Space Odyssey.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate for unusable values.
var ErrInvalid = errors.New("invalid config")

// OdysseyConfig contains all tunable parameters of the simulation.
// World units are pixels of the reference 800x600 viewport.
type OdysseyConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Ammo       AmmoConfig       `yaml:"ammo"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ViewportConfig defines the world rectangle.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`     // units per second
	TurnRate float64 `yaml:"turn_rate"` // degrees per second
}

// AsteroidConfig defines asteroid spawning and movement.
type AsteroidConfig struct {
	MinSize      int     `yaml:"min_size"`      // max size is viewport width / 4
	Speed        float64 `yaml:"speed"`         // units per second
	TargetMargin int     `yaml:"target_margin"` // keep aim points away from edges
	SpawnOffset  float64 `yaml:"spawn_offset"`  // extra distance beyond the far edge
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	AngleOffset float64 `yaml:"angle_offset"` // added to player rotation, degrees
}

// AmmoConfig defines the magazine.
type AmmoConfig struct {
	Max             int     `yaml:"max"`
	ReloadThreshold float64 `yaml:"reload_threshold"` // seconds
}

// DifficultyConfig defines spawn cadence scaling.
//
// When enabled and score is a positive multiple of Step, the spawn threshold
// becomes Base - score/Slope. There is no lower bound.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SpawnThreshold float64 `yaml:"spawn_threshold"` // seconds between asteroids at score 0
	Step           int     `yaml:"step"`
	Base           float64 `yaml:"base"`
	Slope          float64 `yaml:"slope"`
}

// AudioConfig defines the cue player.
type AudioConfig struct {
	SoundOn    bool    `yaml:"sound_on"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // beep effects.Volume exponent, 0 = unchanged
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SpawnThresholdForPreset returns the starting spawn threshold for a preset.
func SpawnThresholdForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.9
	case DifficultyHard:
		return 0.4
	default:
		return 0.6
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports every non-positive dimension, speed or ammo value.
func (c OdysseyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, name, v))
		}
	}

	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	positive("player.size", c.Player.Size)
	positive("player.speed", c.Player.Speed)
	positive("player.turn_rate", c.Player.TurnRate)
	positive("asteroids.min_size", float64(c.Asteroids.MinSize))
	positive("asteroids.speed", c.Asteroids.Speed)
	positive("bullets.width", c.Bullets.Width)
	positive("bullets.height", c.Bullets.Height)
	positive("bullets.speed", c.Bullets.Speed)
	positive("ammo.max", float64(c.Ammo.Max))
	positive("difficulty.spawn_threshold", c.Difficulty.SpawnThreshold)

	if c.Ammo.ReloadThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w: ammo.reload_threshold must not be negative", ErrInvalid))
	}
	if c.Difficulty.Enabled {
		positive("difficulty.step", float64(c.Difficulty.Step))
		positive("difficulty.slope", c.Difficulty.Slope)
	}
	if maxSize := int(c.Viewport.Width) / 4; c.Asteroids.MinSize > maxSize {
		errs = append(errs, fmt.Errorf("%w: asteroids.min_size %d exceeds viewport.width/4 (%d)",
			ErrInvalid, c.Asteroids.MinSize, maxSize))
	}
	if m := float64(c.Asteroids.TargetMargin); 2*m > c.Viewport.Width || 2*m > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("%w: asteroids.target_margin %v leaves no target area", ErrInvalid, m))
	}

	return errors.Join(errs...)
}
