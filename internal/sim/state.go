package sim

import "github.com/vovakirdan/space-odyssey/internal/geom"

// State is a read-only summary of the world used by frontends, journals and tests.
type State struct {
	Mode           Mode
	Paused         bool
	Score          int
	Ammo           int // as shown on the HUD
	Asteroids      int
	Bullets        int
	SpawnThreshold float64
	Clock          float64
	Frames         int64
	SoundOn        bool
}

// State returns the current summary.
func (w *World) State() State {
	return State{
		Mode:           w.mode.Mode,
		Paused:         w.mode.Paused,
		Score:          w.difficulty.Score,
		Ammo:           w.ammo.Display(w.clock),
		Asteroids:      len(w.asteroids),
		Bullets:        len(w.bullets),
		SpawnThreshold: w.difficulty.SpawnThreshold,
		Clock:          w.clock,
		Frames:         w.frames,
		SoundOn:        w.soundOn,
	}
}

// Viewport is the world rectangle frontends scale to their surface.
func (w *World) Viewport() geom.Rect {
	return w.bounds
}

// Player returns the ship.
func (w *World) Player() *Player {
	return w.player
}

// ExitRequested reports whether EXIT was chosen in the menu.
func (w *World) ExitRequested() bool {
	return w.mode.ExitRequested
}

// SoundOn reports whether cues are audible.
func (w *World) SoundOn() bool {
	return w.soundOn
}

// SetSoundOn applies a persisted sound preference.
func (w *World) SetSoundOn(on bool) {
	w.soundOn = on
	w.refreshHUD()
}

// SetDebug toggles the collision overlay.
func (w *World) SetDebug(on bool) {
	w.debug = on
}
