package sim

import (
	"testing"

	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
)

func TestLabelBounds(t *testing.T) {
	l := newLabel("PLAY", geom.V(400, 300))

	// 4 glyphs * (0.6*30 + 1) - 1
	if l.Width() != 75 {
		t.Errorf("Width() = %v, expected 75", l.Width())
	}

	tests := []struct {
		p    geom.Vec2
		want bool
	}{
		{geom.V(400, 300), true},
		{geom.V(362.5, 285), true},
		{geom.V(437.5, 315), true},
		{geom.V(438, 300), false},
		{geom.V(400, 316), false},
		{geom.V(0, 0), false},
	}
	for _, tt := range tests {
		if got := l.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, expected %v", tt.p, got, tt.want)
		}
	}
}

func TestEmptyLabelWidth(t *testing.T) {
	if newLabel("", geom.V(0, 0)).Width() != 0 {
		t.Error("empty label should have zero width")
	}
}

func TestHUDAnchors(t *testing.T) {
	h := newHUD(800, 600)

	tests := []struct {
		name string
		l    Label
		want geom.Vec2
	}{
		{"score", h.Score, geom.V(640, 60)},
		{"bullets", h.Bullets, geom.V(80, 60)},
		{"play", h.Menu[ItemPlay], geom.V(400, 300)},
		{"options", h.Menu[ItemOptions], geom.V(400, 360)},
		{"exit", h.Menu[ItemExit], geom.V(400, 420)},
		{"sound", h.Sound, geom.V(240, 180)},
	}
	for _, tt := range tests {
		if !approxVec(tt.l.Anchor, tt.want) {
			t.Errorf("%s anchor = %v, expected %v", tt.name, tt.l.Anchor, tt.want)
		}
		if tt.l.FontSize != 30 {
			t.Errorf("%s font size = %v", tt.name, tt.l.FontSize)
		}
	}
}

func TestHUDCursorWraps(t *testing.T) {
	h := newHUD(800, 600)
	if h.Cursor() != ItemPlay || !h.Menu[ItemPlay].Focused {
		t.Fatal("cursor should start on PLAY")
	}
	h.MoveCursor(-1)
	if h.Cursor() != ItemExit {
		t.Errorf("cursor = %v, expected wrap to EXIT", h.Cursor())
	}
	h.MoveCursor(1)
	h.MoveCursor(1)
	if h.Cursor() != ItemOptions || h.Menu[ItemPlay].Focused {
		t.Errorf("cursor = %v, expected OPTIONS with PLAY unfocused", h.Cursor())
	}
}

func TestHUDRefresh(t *testing.T) {
	h := newHUD(800, 600)
	h.refresh(12, 3, false)

	if h.Score.Text != "Score: 12" || h.Bullets.Text != "Bullets: 3" {
		t.Errorf("texts = %q / %q", h.Score.Text, h.Bullets.Text)
	}
	if h.Sound.Text != "Sound: OFF" || h.Sound.Color != core.ColorRed {
		t.Errorf("sound label = %q color %v, expected red OFF", h.Sound.Text, h.Sound.Color)
	}
	h.refresh(0, 0, true)
	if h.Sound.Text != "Sound: ON" || h.Sound.Color != core.ColorWhite {
		t.Errorf("sound label = %q color %v, expected white ON", h.Sound.Text, h.Sound.Color)
	}
}
