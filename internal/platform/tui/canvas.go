package tui

import (
	"math"

	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
	"github.com/vovakirdan/space-odyssey/internal/sim"
)

// shipGlyphs are indexed by heading octant, starting at "up" and turning clockwise.
var shipGlyphs = [8]rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

// logoLines is the menu banner.
var logoLines = []string{
	"S P A C E",
	"O D Y S S E Y",
}

// CellCanvas draws a world onto a cell screen, scaling the world viewport
// to the screen size. It implements sim.Canvas.
type CellCanvas struct {
	screen   *core.Screen
	viewport geom.Rect
	sx, sy   float64 // cells per world unit
	spans    []labelSpan
}

// labelSpan is the row of cells a label was drawn on in the last frame.
type labelSpan struct {
	y, x0, x1 int // x1 exclusive
	anchor    geom.Vec2
}

// NewCellCanvas creates a canvas mapping viewport onto screen.
func NewCellCanvas(screen *core.Screen, viewport geom.Rect) *CellCanvas {
	c := &CellCanvas{screen: screen, viewport: viewport}
	c.Fit()
	return c
}

// Fit recomputes the scale after the screen was resized.
func (c *CellCanvas) Fit() {
	c.sx, c.sy = 0, 0
	c.spans = c.spans[:0]
	if c.viewport.W > 0 {
		c.sx = float64(c.screen.Width()) / c.viewport.W
	}
	if c.viewport.H > 0 {
		c.sy = float64(c.screen.Height()) / c.viewport.H
	}
}

// ToCell maps a world position to the cell containing it.
func (c *CellCanvas) ToCell(p geom.Vec2) (int, int) {
	return int(math.Floor((p.X - c.viewport.X) * c.sx)), int(math.Floor((p.Y - c.viewport.Y) * c.sy))
}

// ToWorld maps a cell to the world position of its center.
func (c *CellCanvas) ToWorld(x, y int) geom.Vec2 {
	if c.sx == 0 || c.sy == 0 {
		return geom.Vec2{}
	}
	return geom.V(
		c.viewport.X+(float64(x)+0.5)/c.sx,
		c.viewport.Y+(float64(y)+0.5)/c.sy,
	)
}

// ClickPoint maps a clicked cell to a world position. A cell covered by a
// drawn label maps to that label's anchor, so a visible label is always
// clickable however few rows the screen has.
func (c *CellCanvas) ClickPoint(x, y int) geom.Vec2 {
	for i := len(c.spans) - 1; i >= 0; i-- {
		s := c.spans[i]
		if y == s.y && x >= s.x0 && x < s.x1 {
			return s.anchor
		}
	}
	return c.ToWorld(x, y)
}

// Background clears the screen and sprinkles a fixed star field.
func (c *CellCanvas) Background() {
	c.screen.Clear()
	c.spans = c.spans[:0]
	for y := range c.screen.Height() {
		for x := range c.screen.Width() {
			if (x*7+y*13)%89 == 0 {
				c.screen.Set(x, y, '.', core.ColorDim)
			}
		}
	}
}

// Ship draws a heading glyph at the ship center.
func (c *CellCanvas) Ship(center, _ geom.Vec2, rotation float64) {
	x, y := c.ToCell(center)
	c.screen.Set(x, y, shipGlyph(rotation), core.ColorCyan)
}

func shipGlyph(rotation float64) rune {
	deg := math.Mod(rotation, 360)
	if deg < 0 {
		deg += 360
	}
	octant := int(math.Round(deg/45)) % len(shipGlyphs)
	return shipGlyphs[octant]
}

// Rock fills the cells covered by the asteroid's disc.
func (c *CellCanvas) Rock(topLeft, size geom.Vec2, _ float64) {
	center := topLeft.Add(size.Scale(0.5))
	r := math.Max(size.X, size.Y) / 2
	filled := c.fillDisc(center, r, '#', core.ColorOrange)
	if !filled {
		x, y := c.ToCell(center)
		c.screen.Set(x, y, '#', core.ColorOrange)
	}
}

// fillDisc sets every cell whose center lies inside the world-space disc.
func (c *CellCanvas) fillDisc(center geom.Vec2, r float64, glyph rune, color core.Color) bool {
	x0, y0 := c.ToCell(center.Sub(geom.V(r, r)))
	x1, y1 := c.ToCell(center.Add(geom.V(r, r)))
	filled := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c.ToWorld(x, y).Distance(center) <= r {
				c.screen.Set(x, y, glyph, color)
				filled = true
			}
		}
	}
	return filled
}

// Shot draws a bullet as a single cell.
func (c *CellCanvas) Shot(pos, _ geom.Vec2, _ float64) {
	x, y := c.ToCell(pos)
	c.screen.Set(x, y, '•', core.ColorYellow)
}

// Logo draws the banner centered on center.
func (c *CellCanvas) Logo(center geom.Vec2) {
	x, y := c.ToCell(center)
	for i, line := range logoLines {
		c.screen.DrawTextCentered(x, y+i, line, core.ColorMagenta)
	}
}

// Text draws a label centered on its anchor. Focused labels get a cursor.
func (c *CellCanvas) Text(l sim.Label) {
	x, y := c.ToCell(l.Anchor)
	text, color := l.Text, l.Color
	if l.Focused {
		text = "> " + text + " <"
		color = core.ColorYellow
	}
	c.screen.DrawTextCentered(x, y, text, color)

	n := len([]rune(text))
	x0 := x - n/2
	c.spans = append(c.spans, labelSpan{y: y, x0: x0, x1: x0 + n, anchor: l.Anchor})
}

// Outline traces a collision circle.
func (c *CellCanvas) Outline(circle geom.Circle) {
	const steps = 24
	for i := range steps {
		a := float64(i) * 2 * math.Pi / steps
		p := circle.Center.Add(geom.V(math.Cos(a), math.Sin(a)).Scale(circle.Radius))
		x, y := c.ToCell(p)
		if c.screen.Get(x, y) == ' ' {
			c.screen.Set(x, y, '·', core.ColorGreen)
		}
	}
}

var _ sim.Canvas = (*CellCanvas)(nil)
