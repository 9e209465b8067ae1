package sim

import (
	"fmt"

	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
)

// Label metrics. Glyphs are treated as monospace: each advances
// GlyphAdvance*FontSize plus LabelSpacing.
const (
	LabelFontSize = 30.0
	LabelSpacing  = 1.0
	GlyphAdvance  = 0.6
)

// Label is a line of text centered on Anchor.
type Label struct {
	Text     string
	Anchor   geom.Vec2
	FontSize float64
	Color    core.Color
	Focused  bool // keyboard cursor is on this menu item
}

func newLabel(text string, anchor geom.Vec2) Label {
	return Label{Text: text, Anchor: anchor, FontSize: LabelFontSize, Color: core.ColorWhite}
}

// Width is the measured text width.
func (l Label) Width() float64 {
	n := len([]rune(l.Text))
	if n == 0 {
		return 0
	}
	return float64(n)*(GlyphAdvance*l.FontSize+LabelSpacing) - LabelSpacing
}

// Bounds is the text rectangle centered on the anchor.
func (l Label) Bounds() geom.Rect {
	return geom.CenteredRect(l.Anchor, l.Width(), l.FontSize)
}

// Contains hit-tests a point against the label.
func (l Label) Contains(p geom.Vec2) bool {
	return l.Bounds().Contains(p)
}

// MenuItem identifies an entry on the main menu.
type MenuItem int

const (
	ItemPlay MenuItem = iota
	ItemOptions
	ItemExit
	menuItems
)

// HUD holds every label the world draws. Anchors are fractions of the viewport.
type HUD struct {
	Score   Label
	Bullets Label
	Paused  Label
	Menu    [menuItems]Label
	Sound   Label

	cursor MenuItem
}

func newHUD(w, h float64) HUD {
	at := func(fx, fy float64) geom.Vec2 { return geom.V(w*fx, h*fy) }

	hud := HUD{
		Score:   newLabel("Score: 0", at(0.8, 0.1)),
		Bullets: newLabel("Bullets: 0", at(0.1, 0.1)),
		Paused:  newLabel("PAUSED", at(0.5, 0.5)),
		Sound:   newLabel("Sound: ON", at(0.3, 0.3)),
	}
	hud.Menu[ItemPlay] = newLabel("PLAY", at(0.5, 0.5))
	hud.Menu[ItemOptions] = newLabel("OPTIONS", at(0.5, 0.6))
	hud.Menu[ItemExit] = newLabel("EXIT", at(0.5, 0.7))
	hud.Paused.Color = core.ColorYellow
	hud.focus(ItemPlay)
	return hud
}

// Cursor returns the focused menu item.
func (h *HUD) Cursor() MenuItem {
	return h.cursor
}

// MoveCursor steps the keyboard focus, wrapping around.
func (h *HUD) MoveCursor(delta int) {
	n := int(menuItems)
	h.focus(MenuItem(((int(h.cursor)+delta)%n + n) % n))
}

func (h *HUD) focus(item MenuItem) {
	h.cursor = item
	for i := range h.Menu {
		h.Menu[i].Focused = MenuItem(i) == item
	}
}

// itemAt returns the menu item under p.
func (h *HUD) itemAt(p geom.Vec2) (MenuItem, bool) {
	for i, l := range h.Menu {
		if l.Contains(p) {
			return MenuItem(i), true
		}
	}
	return 0, false
}

func (h *HUD) refresh(score, bullets int, soundOn bool) {
	h.Score.Text = fmt.Sprintf("Score: %d", score)
	h.Bullets.Text = fmt.Sprintf("Bullets: %d", bullets)
	if soundOn {
		h.Sound.Text = "Sound: ON"
		h.Sound.Color = core.ColorWhite
	} else {
		h.Sound.Text = "Sound: OFF"
		h.Sound.Color = core.ColorRed
	}
}
