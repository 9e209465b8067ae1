package main

import (
	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/space-odyssey/internal/assets"
	"github.com/vovakirdan/space-odyssey/internal/audio"
	"github.com/vovakirdan/space-odyssey/internal/config"
	"github.com/vovakirdan/space-odyssey/internal/session"
	"github.com/vovakirdan/space-odyssey/internal/sim"
	"github.com/vovakirdan/space-odyssey/internal/storage"
)

// localGame is everything a local frontend needs, plus the teardown.
type localGame struct {
	cfg      config.OdysseyConfig
	seed     int64
	world    *sim.World
	store    *storage.Store
	cues     audio.CloseablePlayer
	recorder *session.Recorder
	logger   *log.Logger
}

// startLocal loads config, sound cues and storage and builds the world.
// loaded carries the frontend's own asset problems; they are checked
// together with the sound cues.
func startLocal(frontend string, logger *log.Logger, loaded assets.Report) (*localGame, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	g := &localGame{cfg: cfg, seed: seed(), logger: logger}

	cues, err := g.openAudio(loaded)
	if err != nil {
		return nil, err
	}
	g.cues = cues

	g.store = openStore(logger)
	g.world = sim.NewWorld(cfg, sim.NewRandom(g.seed), g.cues)
	g.recorder = session.Start(g.store, logger, frontend, "", g.seed)
	g.recorder.Restore(g.world)

	logger.Info("game started", "frontend", frontend, "seed", g.seed,
		"difficulty", flagDifficulty, "sound", g.world.SoundOn())
	return g, nil
}

// openAudio decodes the cues and opens the speaker. A missing device is
// not fatal; the game runs silent.
func (g *localGame) openAudio(loaded assets.Report) (audio.CloseablePlayer, error) {
	rate := beep.SampleRate(g.cfg.Audio.SampleRate)
	if rate <= 0 {
		rate = audio.DefaultSampleRate
	}

	cues, rep := audio.LoadCues(flagAssets, rate)
	loaded.Merge(rep)
	if err := checkAssets(g.logger, loaded); err != nil {
		return nil, err
	}

	p, err := audio.Open(cues, rate, g.cfg.Audio.Volume)
	if err != nil {
		g.logger.Warn("audio unavailable, running silent", "error", err)
		return audio.Silent{}, nil
	}
	return p, nil
}

// close runs the teardown: journal, audio, storage.
func (g *localGame) close() {
	state := g.world.State()
	g.recorder.Finish(state.Frames)
	g.cues.Close()
	if g.store != nil {
		g.store.Close()
	}

	stats := g.recorder.Stats()
	g.logger.Info("game finished", "score", state.Score, "frames", state.Frames,
		"shots", stats.Shots, "destroyed", stats.Destroyed, "deaths", stats.Deaths)
}
