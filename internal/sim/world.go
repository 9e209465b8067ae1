// Package sim implements the Space Odyssey simulation: entities, spawning,
// collisions, scoring, difficulty and the menu/game/options state machine.
//
// A World is advanced by a frontend calling Step once per frame with the
// polled input and the measured frame delta, then Render with a Canvas.
// Given the same seed, input frames and deltas, two worlds evolve identically.
package sim

import (
	"github.com/vovakirdan/space-odyssey/internal/config"
	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
)

// World owns the whole simulation state. It is not safe for concurrent use;
// exactly one loop driver owns it.
type World struct {
	cfg    config.OdysseyConfig
	bounds geom.Rect
	cues   CuePlayer

	clock   float64 // simulation seconds, advances every frame
	frames  int64
	mode    ModeState
	soundOn bool
	debug   bool

	player     *Player
	asteroids  []*Asteroid
	bullets    []*Bullet
	ammo       Ammo
	difficulty Difficulty
	spawner    *Spawner
	hud        HUD

	events []Event
}

// NewWorld creates a world in the menu. A nil cues player discards sound.
func NewWorld(cfg config.OdysseyConfig, rng RandomSource, cues CuePlayer) *World {
	if cues == nil {
		cues = NopCues{}
	}
	w := cfg.Viewport.Width
	h := cfg.Viewport.Height

	world := &World{
		cfg:        cfg,
		bounds:     geom.Rect{W: w, H: h},
		cues:       cues,
		mode:       NewModeState(),
		soundOn:    cfg.Audio.SoundOn,
		player:     NewPlayer(geom.V(w/2, h/2), cfg.Player.Size, cfg.Player.Speed, cfg.Player.TurnRate),
		ammo:       NewAmmo(cfg.Ammo.Max, cfg.Ammo.ReloadThreshold),
		difficulty: NewDifficulty(cfg.Difficulty),
		spawner:    NewSpawner(cfg, rng),
		hud:        newHUD(w, h),
	}
	world.refreshHUD()
	return world
}

// Step advances one frame.
func (w *World) Step(in core.InputFrame, dt float64) {
	w.clock += dt
	w.frames++

	prev := w.mode.Mode
	if in.WasPressed(core.ActionPause) {
		w.mode.TogglePause()
	}
	if in.WasPressed(core.ActionBack) {
		w.mode.Back()
	}
	if in.WasPressed(core.ActionDebug) {
		w.debug = !w.debug
	}
	if in.WasPressed(core.ActionFire) {
		w.fire()
	}

	if w.mode.Running() {
		if w.spawner.AsteroidDue(w.clock, w.difficulty.SpawnThreshold) {
			w.asteroids = append(w.asteroids, w.spawner.Asteroid())
		}
		for _, a := range w.asteroids {
			a.Update(dt)
		}
		for _, b := range w.bullets {
			b.Update(dt)
		}
		w.resolveCollisions()
		w.player.Steer(in)
		w.player.Update(dt)
	}

	w.difficulty.Update()
	w.updateUI(in)

	if w.mode.Mode != prev {
		w.emit(EventModeChanged)
	}
}

// fire spawns a bullet if the game is running and the magazine allows it.
func (w *World) fire() {
	if !w.mode.Running() {
		return
	}
	if !w.ammo.Take(w.clock) {
		return
	}
	w.cue(CueShoot)
	w.bullets = append(w.bullets, w.spawner.Bullet(w.player))
	w.emit(EventShot)
}

// Restart clears the field and resets score, ammo and spawn threshold.
// The ship is moved back to the center and keeps its rotation.
func (w *World) Restart() {
	clear(w.asteroids)
	clear(w.bullets)
	w.asteroids = w.asteroids[:0]
	w.bullets = w.bullets[:0]
	w.difficulty.Reset()
	w.ammo.Refill()
	w.player.MoveTo(geom.V(w.bounds.W/2, w.bounds.H/2))
}

// updateUI handles menu activation and refreshes the HUD text.
func (w *World) updateUI(in core.InputFrame) {
	switch w.mode.Mode {
	case ModeMenu:
		if in.WasPressed(core.ActionMenuUp) {
			w.hud.MoveCursor(-1)
		}
		if in.WasPressed(core.ActionMenuDown) {
			w.hud.MoveCursor(1)
		}
		if in.Click != nil {
			if item, ok := w.hud.itemAt(*in.Click); ok {
				w.activate(item)
			}
		} else if in.WasPressed(core.ActionConfirm) {
			w.activate(w.hud.Cursor())
		}
	case ModeOptions:
		clicked := in.Click != nil && w.hud.Sound.Contains(*in.Click)
		if clicked || in.WasPressed(core.ActionConfirm) {
			w.soundOn = !w.soundOn
			w.emit(EventSoundToggled)
		}
	}
	w.refreshHUD()
}

func (w *World) activate(item MenuItem) {
	switch item {
	case ItemPlay:
		w.mode.Play()
	case ItemOptions:
		w.mode.Options()
	case ItemExit:
		w.mode.Exit()
	}
}

func (w *World) refreshHUD() {
	w.hud.refresh(w.difficulty.Score, w.ammo.Display(w.clock), w.soundOn)
}

// cue plays a sound unless sound is off or the game is paused.
func (w *World) cue(c Cue) {
	if w.soundOn && !w.mode.Paused {
		w.cues.Play(c)
	}
}

func (w *World) emit(kind EventKind) {
	w.events = append(w.events, Event{
		Kind:    kind,
		Clock:   w.clock,
		Score:   w.difficulty.Score,
		Mode:    w.mode.Mode,
		SoundOn: w.soundOn,
	})
}

// Events returns the events since the previous call and forgets them.
func (w *World) Events() []Event {
	ev := w.events
	w.events = nil
	return ev
}

// Render draws the branch of the current mode.
func (w *World) Render(dst Canvas) {
	dst.Background()

	switch w.mode.Mode {
	case ModeGame:
		for _, b := range w.bullets {
			b.Draw(dst)
		}
		for _, a := range w.asteroids {
			a.Draw(dst)
		}
		w.player.Draw(dst)
		if w.debug {
			for _, b := range w.bullets {
				dst.Outline(b.Hitbox())
			}
			for _, a := range w.asteroids {
				dst.Outline(a.Hitbox())
			}
			dst.Outline(w.player.Hitbox())
		}
		dst.Text(w.hud.Score)
		dst.Text(w.hud.Bullets)
		if w.mode.Paused {
			dst.Text(w.hud.Paused)
		}
	case ModeMenu:
		dst.Logo(geom.V(w.bounds.W/2, w.bounds.H*0.1))
		for _, l := range w.hud.Menu {
			dst.Text(l)
		}
	case ModeOptions:
		dst.Text(w.hud.Sound)
	}
}
