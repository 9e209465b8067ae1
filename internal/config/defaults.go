package config

import (
	_ "embed"
)

//go:embed defaults/odyssey.yaml
var defaultOdysseyYAML []byte

// DefaultOdysseyConfig returns the built-in configuration.
func DefaultOdysseyConfig() OdysseyConfig {
	return OdysseyConfig{
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:     32,
			Speed:    400,
			TurnRate: 300,
		},
		Asteroids: AsteroidConfig{
			MinSize:      32,
			Speed:        100,
			TargetMargin: 100,
			SpawnOffset:  50,
		},
		Bullets: BulletConfig{
			Width:       10,
			Height:      5,
			Speed:       600,
			AngleOffset: -90,
		},
		Ammo: AmmoConfig{
			Max:             5,
			ReloadThreshold: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			SpawnThreshold: 0.6,
			Step:           10,
			Base:           0.5,
			Slope:          200,
		},
		Audio: AudioConfig{
			SoundOn:    true,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultOdysseyYAML
}
