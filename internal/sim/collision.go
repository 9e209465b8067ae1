package sim

import (
	"slices"

	"github.com/vovakirdan/space-odyssey/internal/geom"
)

// resolveCollisions runs the per-step collision pass. The order decides
// which event wins: a ship hit restarts the round and ends the pass.
func (w *World) resolveCollisions() {
	if len(w.asteroids) == 0 && len(w.bullets) == 0 {
		return
	}

	for _, a := range w.asteroids {
		if a.Collides(w.player) {
			w.cue(CueDeath)
			w.emit(EventDeath)
			w.Restart()
			return
		}
	}

	w.bullets = pruneBullets(w.bullets, w.bounds)
	if len(w.bullets) == 0 {
		return
	}

	var hits int
	w.asteroids, w.bullets, hits = resolveHits(w.asteroids, w.bullets)
	for range hits {
		w.cue(CueExplosion)
		w.difficulty.Score++
		w.emit(EventAsteroidDestroyed)
	}
}

// pruneBullets drops bullets whose position has left bounds.
func pruneBullets(bullets []*Bullet, bounds geom.Rect) []*Bullet {
	return slices.DeleteFunc(bullets, func(b *Bullet) bool {
		return !bounds.Contains(b.Pos)
	})
}

// resolveHits pairs every asteroid with the first live bullet touching it.
// Both are marked and removed once all pairs are found, so a bullet can
// destroy only one asteroid and no element is skipped.
func resolveHits(asteroids []*Asteroid, bullets []*Bullet) ([]*Asteroid, []*Bullet, int) {
	hits := 0
	for _, a := range asteroids {
		for _, b := range bullets {
			if b.dead || !a.Collides(b) {
				continue
			}
			a.dead = true
			b.dead = true
			hits++
			break
		}
	}
	if hits == 0 {
		return asteroids, bullets, 0
	}
	asteroids = slices.DeleteFunc(asteroids, func(a *Asteroid) bool { return a.dead })
	bullets = slices.DeleteFunc(bullets, func(b *Bullet) bool { return b.dead })
	return asteroids, bullets, hits
}
