package sim

import (
	"github.com/vovakirdan/space-odyssey/internal/config"
	"github.com/vovakirdan/space-odyssey/internal/geom"
)

// Spawner is the only place asteroids and bullets are created.
type Spawner struct {
	rng       RandomSource
	viewport  config.ViewportConfig
	asteroids config.AsteroidConfig
	bullets   config.BulletConfig

	lastAsteroid float64 // clock of the previous asteroid spawn
}

// NewSpawner creates a spawner drawing randomness from rng.
func NewSpawner(cfg config.OdysseyConfig, rng RandomSource) *Spawner {
	return &Spawner{
		rng:       rng,
		viewport:  cfg.Viewport,
		asteroids: cfg.Asteroids,
		bullets:   cfg.Bullets,
	}
}

// AsteroidDue reports whether threshold seconds have passed since the
// last asteroid. When it returns true the cadence restarts at clock.
func (s *Spawner) AsteroidDue(clock, threshold float64) bool {
	if clock-s.lastAsteroid < threshold {
		return false
	}
	s.lastAsteroid = clock
	return true
}

// Asteroid creates an asteroid outside the viewport aimed inward.
//
// Both spawn coordinates pick between -size and height+size+offset.
// The x rule deliberately uses the viewport height as well.
func (s *Spawner) Asteroid() *Asteroid {
	w, h := s.viewport.Width, s.viewport.Height
	size := s.rng.IntRange(s.asteroids.MinSize, int(w)/4)
	fs := float64(size)

	x := h + fs + s.asteroids.SpawnOffset
	if s.rng.Coin() {
		x = -fs
	}
	y := h + fs + s.asteroids.SpawnOffset
	if s.rng.Coin() {
		y = -fs
	}
	spawn := geom.V(x, y)

	m := s.asteroids.TargetMargin
	target := geom.V(
		float64(s.rng.IntRange(m, int(w)-m)),
		float64(s.rng.IntRange(m, int(h)-m)),
	)

	angle := SpawnAngle(geom.Angle(spawn, target))
	return NewAsteroid(spawn, size, angle, s.asteroids.Speed)
}

// SpawnAngle maps a raw angle into the asteroid rotation in degrees.
// Values within [-1, 1] scale by 360; anything else becomes
// 360 - raw*360 clamped to [-360, 360].
func SpawnAngle(raw float64) float64 {
	if raw > 1 || raw < -1 {
		return geom.Clamp(360-raw*360, -360, 360)
	}
	return raw * 360
}

// Bullet creates a bullet at the ship position, rotated by the configured
// offset so that rotation 0 fires "up".
func (s *Spawner) Bullet(p *Player) *Bullet {
	return NewBullet(
		p.Pos,
		geom.V(s.bullets.Width, s.bullets.Height),
		p.Rotation+s.bullets.AngleOffset,
		s.bullets.Speed,
	)
}
