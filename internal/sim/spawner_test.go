package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/space-odyssey/internal/config"
	"github.com/vovakirdan/space-odyssey/internal/geom"
)

func TestSpawnAngle(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{0, 0},
		{0.5, 180},
		{1, 360},
		{-1, -360},
		{1.5, -180},
		{-2, 360},
		{3, -360},
	}

	for _, tt := range tests {
		if got := SpawnAngle(tt.raw); !approx(got, tt.want) {
			t.Errorf("SpawnAngle(%v) = %v, expected %v", tt.raw, got, tt.want)
		}
	}
}

func TestSpawnAsteroid(t *testing.T) {
	cfg := config.DefaultOdysseyConfig()

	tests := []struct {
		name      string
		coins     []bool
		wantPos   geom.Vec2
		wantAngle float64
	}{
		{
			name:      "top left",
			coins:     []bool{true, true},
			wantPos:   geom.V(-40, -40),
			wantAngle: SpawnAngle(math.Atan2(300+40, 400+40)),
		},
		{
			// x uses the viewport height: 600 + 40 + 50, not 800 + 40 + 50
			name:      "far corner uses height for x",
			coins:     []bool{false, false},
			wantPos:   geom.V(690, 690),
			wantAngle: 360,
		},
		{
			name:      "bottom left",
			coins:     []bool{true, false},
			wantPos:   geom.V(-40, 690),
			wantAngle: math.Atan2(300-690, 400+40) * 360,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRandom{ints: []int{40, 400, 300}, coins: tt.coins}
			a := NewSpawner(cfg, rng).Asteroid()

			if a.Pos != tt.wantPos {
				t.Errorf("Pos = %v, expected %v", a.Pos, tt.wantPos)
			}
			if a.Size != geom.V(40, 40) {
				t.Errorf("Size = %v, expected 40x40", a.Size)
			}
			if !approx(a.Rotation, tt.wantAngle) {
				t.Errorf("Rotation = %v, expected %v", a.Rotation, tt.wantAngle)
			}
			if a.Speed != 100 {
				t.Errorf("Speed = %v, expected 100", a.Speed)
			}
		})
	}
}

// boundsRandom checks every IntRange call against expected bounds.
type boundsRandom struct {
	calls [][2]int
	inner *Random
}

func (b *boundsRandom) IntRange(lo, hi int) int {
	b.calls = append(b.calls, [2]int{lo, hi})
	return b.inner.IntRange(lo, hi)
}

func (b *boundsRandom) Coin() bool { return b.inner.Coin() }

func TestSpawnAsteroidRanges(t *testing.T) {
	rng := &boundsRandom{inner: NewRandom(7)}
	s := NewSpawner(config.DefaultOdysseyConfig(), rng)

	for range 200 {
		a := s.Asteroid()
		size := int(a.Size.X)
		if size < 32 || size > 200 {
			t.Fatalf("size %d outside [32, 200]", size)
		}
		f := float64(size)
		if a.Pos.X != -f && a.Pos.X != 600+f+50 {
			t.Fatalf("x = %v is not an off-screen spawn for size %d", a.Pos.X, size)
		}
		if a.Pos.Y != -f && a.Pos.Y != 600+f+50 {
			t.Fatalf("y = %v is not an off-screen spawn for size %d", a.Pos.Y, size)
		}
	}

	want := [][2]int{{32, 200}, {100, 700}, {100, 500}}
	for i, c := range rng.calls[:3] {
		if c != want[i] {
			t.Errorf("IntRange call %d = %v, expected %v", i, c, want[i])
		}
	}
}

func TestSpawnBullet(t *testing.T) {
	s := NewSpawner(config.DefaultOdysseyConfig(), &scriptedRandom{})
	p := NewPlayer(geom.V(123, 456), 32, 400, 300)
	p.Rotation = 30

	b := s.Bullet(p)
	if b.Pos != p.Pos {
		t.Errorf("bullet at %v, expected player position %v", b.Pos, p.Pos)
	}
	if b.Rotation != -60 {
		t.Errorf("bullet rotation = %v, expected player rotation - 90", b.Rotation)
	}
	if b.Size != geom.V(10, 5) || b.Speed != 600 {
		t.Errorf("bullet size/speed = %v/%v", b.Size, b.Speed)
	}
}

func TestAsteroidDue(t *testing.T) {
	s := NewSpawner(config.DefaultOdysseyConfig(), &scriptedRandom{})

	if s.AsteroidDue(0.5, 0.6) {
		t.Error("0.5s < 0.6s threshold should not spawn")
	}
	if !s.AsteroidDue(0.6, 0.6) {
		t.Error("reaching the threshold should spawn")
	}
	if s.AsteroidDue(1.0, 0.6) {
		t.Error("cadence should restart from the last spawn")
	}
	if !s.AsteroidDue(1.0, -0.5) {
		t.Error("negative threshold should spawn every check")
	}
}

func TestRandomIntRangeInclusive(t *testing.T) {
	r := NewRandom(1)
	seen := map[int]bool{}
	for range 1000 {
		v := r.IntRange(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("IntRange(3, 5) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all of 3, 4, 5 to appear, saw %v", seen)
	}
	if r.IntRange(9, 9) != 9 {
		t.Error("IntRange(9, 9) should be 9")
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for range 50 {
		if a.IntRange(0, 1000) != b.IntRange(0, 1000) || a.Coin() != b.Coin() {
			t.Fatal("same seed should give the same sequence")
		}
	}
}
