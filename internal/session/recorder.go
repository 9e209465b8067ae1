// Package session ties a running World to the session journal: it counts
// shots, kills and deaths, persists the sound toggle and logs events.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-odyssey/internal/sim"
	"github.com/vovakirdan/space-odyssey/internal/storage"
)

// Recorder journals one play session. A nil store disables persistence;
// the recorder still counts and logs.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger
	id     int64
	stats  storage.SessionStats
	done   bool

	// saveSettings is false for remote sessions: the settings table belongs
	// to whoever plays locally on the host.
	saveSettings bool
}

// remoteFrontend journals sessions but never writes host settings.
const remoteFrontend = "ssh"

// Start opens a journal entry. Store failures are logged, never returned.
func Start(store *storage.Store, logger *log.Logger, frontend, player string, seed int64) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	r := &Recorder{store: store, logger: logger, saveSettings: frontend != remoteFrontend}
	if store == nil {
		return r
	}

	id, err := store.StartSession(frontend, player, seed)
	if err != nil {
		logger.Warn("Could not start session journal", "error", err)
		return r
	}
	r.id = id
	logger.Debug("Session started", "id", id, "frontend", frontend, "player", player, "seed", seed)
	return r
}

// Restore applies persisted settings to w.
func (r *Recorder) Restore(w *sim.World) {
	if r.store == nil {
		return
	}
	on, err := r.store.SoundOn(w.SoundOn())
	if err != nil {
		r.logger.Warn("Could not read sound setting", "error", err)
	}
	w.SetSoundOn(on)
}

// Observe consumes the events of one step.
func (r *Recorder) Observe(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventShot:
			r.stats.Shots++
		case sim.EventAsteroidDestroyed:
			r.stats.Destroyed++
			r.logger.Debug("Asteroid destroyed", "score", e.Score)
		case sim.EventDeath:
			r.stats.Deaths++
			r.logger.Info("Ship destroyed", "score", e.Score, "at", e.Clock)
		case sim.EventSoundToggled:
			r.logger.Debug("Sound toggled", "on", e.SoundOn)
			if r.store != nil && r.saveSettings {
				if err := r.store.SetSoundOn(e.SoundOn); err != nil {
					r.logger.Warn("Could not save sound setting", "error", err)
				}
			}
		case sim.EventModeChanged:
			r.logger.Debug("Mode changed", "mode", e.Mode)
		}
	}
}

// Stats returns the counters so far.
func (r *Recorder) Stats() storage.SessionStats {
	return r.stats
}

// Finish closes the journal entry. Calling it twice is a no-op.
func (r *Recorder) Finish(frames int64) {
	if r.done {
		return
	}
	r.done = true
	r.stats.Frames = frames

	if r.store == nil || r.id == 0 {
		return
	}
	if err := r.store.FinishSession(r.id, r.stats); err != nil {
		r.logger.Warn("Could not finish session journal", "error", err)
		return
	}
	r.logger.Debug("Session finished", "id", r.id, "frames", frames,
		"shots", r.stats.Shots, "destroyed", r.stats.Destroyed, "deaths", r.stats.Deaths)
}
