package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML OdysseyConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultOdysseyConfig() {
		t.Errorf("embedded defaults drifted from DefaultOdysseyConfig:\n yaml: %+v\n code: %+v",
			fromYAML, DefaultOdysseyConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultOdysseyConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*OdysseyConfig)
	}{
		{"zero width", func(c *OdysseyConfig) { c.Viewport.Width = 0 }},
		{"negative player speed", func(c *OdysseyConfig) { c.Player.Speed = -1 }},
		{"zero bullet speed", func(c *OdysseyConfig) { c.Bullets.Speed = 0 }},
		{"zero ammo", func(c *OdysseyConfig) { c.Ammo.Max = 0 }},
		{"negative reload", func(c *OdysseyConfig) { c.Ammo.ReloadThreshold = -0.1 }},
		{"min size above quarter width", func(c *OdysseyConfig) { c.Asteroids.MinSize = 500 }},
		{"margin swallows viewport", func(c *OdysseyConfig) { c.Asteroids.TargetMargin = 400 }},
		{"zero difficulty step", func(c *OdysseyConfig) { c.Difficulty.Step = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultOdysseyConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateFixedIgnoresStep(t *testing.T) {
	cfg := DefaultOdysseyConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.Step = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled scaling should not require a step: %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		threshold float64
	}{
		{DifficultyEasy, true, 0.9},
		{DifficultyNormal, true, 0.6},
		{DifficultyHard, true, 0.4},
		{DifficultyFixed, false, 0.6},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultOdysseyConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.SpawnThreshold != tt.threshold {
				t.Errorf("SpawnThreshold = %v, expected %v", cfg.Difficulty.SpawnThreshold, tt.threshold)
			}
		})
	}
}

func TestIsFixedPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		if IsFixedPreset(p) {
			t.Errorf("IsFixedPreset(%q) = true", p)
		}
	}
	if !IsFixedPreset(DifficultyFixed) {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset should default to normal, got %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 250\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.Speed != 250 {
		t.Errorf("Player.Speed = %v, expected 250", cfg.Player.Speed)
	}
	if cfg.Player.TurnRate != 300 {
		t.Errorf("unspecified keys should keep defaults, TurnRate = %v", cfg.Player.TurnRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultOdysseyConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}

	// Local ./configs beats embedded
	writeConfig(t, filepath.Join(work, "configs"), "ammo:\n  max: 7\n")
	cfg, _ = Load("")
	if cfg.Ammo.Max != 7 {
		t.Errorf("local config not picked up, Ammo.Max = %d", cfg.Ammo.Max)
	}

	// User config beats local
	writeConfig(t, filepath.Join(home, ".odyssey", "configs"), "ammo:\n  max: 9\n")
	cfg, _ = Load("")
	if cfg.Ammo.Max != 9 {
		t.Errorf("user config should win, Ammo.Max = %d", cfg.Ammo.Max)
	}
}

func TestLoadSkipsMalformedUserConfig(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeConfig(t, filepath.Join(home, ".odyssey", "configs"), "ammo: {{{")
	writeConfig(t, filepath.Join(work, "configs"), "ammo:\n  max: 3\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ammo.Max != 3 {
		t.Errorf("malformed user config should fall through to local, Ammo.Max = %d", cfg.Ammo.Max)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultOdysseyConfig()
	cfg.Audio.SoundOn = false

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back OdysseyConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
