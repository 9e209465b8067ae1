package sim

import "github.com/vovakirdan/space-odyssey/internal/config"

// Difficulty tracks score and the asteroid spawn interval derived from it.
type Difficulty struct {
	Score          int
	SpawnThreshold float64 // seconds between spawns, may go negative

	cfg config.DifficultyConfig
}

// NewDifficulty creates the state for score 0.
func NewDifficulty(cfg config.DifficultyConfig) Difficulty {
	return Difficulty{SpawnThreshold: cfg.SpawnThreshold, cfg: cfg}
}

// Update recomputes the threshold when the score sits on a positive
// multiple of the step. Other scores keep the previous value.
func (d *Difficulty) Update() {
	if !d.cfg.Enabled || d.cfg.Step <= 0 {
		return
	}
	if d.Score > 0 && d.Score%d.cfg.Step == 0 {
		d.SpawnThreshold = ThresholdFor(d.Score, d.cfg)
	}
}

// Reset returns to score 0 and the starting threshold.
func (d *Difficulty) Reset() {
	d.Score = 0
	d.SpawnThreshold = d.cfg.SpawnThreshold
}

// ThresholdFor evaluates base - score/slope. No floor is applied.
func ThresholdFor(score int, cfg config.DifficultyConfig) float64 {
	return cfg.Base - float64(score)/cfg.Slope
}
