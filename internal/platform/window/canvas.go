package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
	"github.com/vovakirdan/space-odyssey/internal/sim"
)

// Debug font glyph metrics of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:     {0xe6, 0x29, 0x37, 0xff},
	core.ColorGreen:   {0x00, 0xe4, 0x30, 0xff},
	core.ColorYellow:  {0xfd, 0xf9, 0x00, 0xff},
	core.ColorBlue:    {0x00, 0x79, 0xf1, 0xff},
	core.ColorMagenta: {0xff, 0x00, 0xff, 0xff},
	core.ColorCyan:    {0x66, 0xbf, 0xff, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:  {0xff, 0xa1, 0x00, 0xff},
	core.ColorGray:    {0x82, 0x82, 0x82, 0xff},
	core.ColorDim:     {0x50, 0x50, 0x50, 0xff},
}

var spaceBlack = color.RGBA{0x05, 0x05, 0x14, 0xff}

// ImageCanvas draws a world onto an ebiten image. World units are pixels.
type ImageCanvas struct {
	dst    *ebiten.Image
	tex    Textures
	labels map[string]*ebiten.Image
}

// NewImageCanvas creates a canvas using tex where available.
func NewImageCanvas(tex Textures) *ImageCanvas {
	return &ImageCanvas{tex: tex, labels: make(map[string]*ebiten.Image)}
}

func (c *ImageCanvas) target(dst *ebiten.Image) {
	c.dst = dst
}

// Background fills the frame with the background texture or plain black.
func (c *ImageCanvas) Background() {
	if c.tex.Background == nil {
		c.dst.Fill(spaceBlack)
		return
	}
	b := c.tex.Background.Bounds()
	d := c.dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(d.Dx())/float64(b.Dx()), float64(d.Dy())/float64(b.Dy()))
	c.dst.DrawImage(c.tex.Background, op)
}

// drawSprite draws img scaled to size, rotated around its center and
// centered on center.
func (c *ImageCanvas) drawSprite(img *ebiten.Image, center, size geom.Vec2, rotation float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X/float64(b.Dx()), size.Y/float64(b.Dy()))
	op.GeoM.Translate(-size.X/2, -size.Y/2)
	op.GeoM.Rotate(rotation * geom.DegToRad)
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// Ship draws the player texture, or a triangle pointing along the heading.
func (c *ImageCanvas) Ship(center, size geom.Vec2, rotation float64) {
	if c.tex.Player != nil {
		c.drawSprite(c.tex.Player, center, size, rotation)
		return
	}

	// Rotation 0 points up the screen.
	rad := rotation * geom.DegToRad
	fwd := geom.V(math.Sin(rad), -math.Cos(rad))
	side := geom.V(-fwd.Y, fwd.X)
	nose := center.Add(fwd.Scale(size.Y / 2))
	left := center.Sub(fwd.Scale(size.Y / 2)).Sub(side.Scale(size.X / 2))
	right := center.Sub(fwd.Scale(size.Y / 2)).Add(side.Scale(size.X / 2))

	clr := palette[core.ColorCyan]
	c.line(nose, left, 2, clr)
	c.line(left, right, 2, clr)
	c.line(right, nose, 2, clr)
}

// Rock draws the asteroid texture inside its bounding square.
func (c *ImageCanvas) Rock(topLeft, size geom.Vec2, rotation float64) {
	center := topLeft.Add(size.Scale(0.5))
	if c.tex.Asteroid != nil {
		c.drawSprite(c.tex.Asteroid, center, size, rotation)
		return
	}
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(size.X/2), 2, palette[core.ColorGray], true)
}

// Shot draws a bullet as a short bar along its heading.
func (c *ImageCanvas) Shot(pos, size geom.Vec2, rotation float64) {
	tail := pos.Sub(geom.Heading(rotation).Scale(size.X))
	c.line(tail, pos, float32(size.Y), palette[core.ColorYellow])
}

// Logo draws the logo texture, or the title in large debug text.
func (c *ImageCanvas) Logo(center geom.Vec2) {
	if c.tex.Logo != nil {
		b := c.tex.Logo.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(center.X-float64(b.Dx())/2, center.Y)
		c.dst.DrawImage(c.tex.Logo, op)
		return
	}
	c.Text(sim.Label{
		Text:     "SPACE ODYSSEY",
		Anchor:   center.Add(geom.V(0, sim.LabelFontSize)),
		FontSize: 2 * sim.LabelFontSize,
		Color:    core.ColorMagenta,
	})
}

// Text draws a label with the debug font, scaled to its font size.
func (c *ImageCanvas) Text(l sim.Label) {
	img := c.labelImage(l.Text)
	if img == nil {
		return
	}
	// Stretch the glyphs to the measured label box so the drawn text matches
	// what menu clicks are tested against.
	w, h := l.Width(), l.FontSize
	sx, sy := w/float64(img.Bounds().Dx()), h/glyphH

	clr := palette[l.Color]
	if l.Focused {
		clr = palette[core.ColorYellow]
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(l.Anchor.X-w/2, l.Anchor.Y-h/2)
	op.ColorScale.ScaleWithColor(clr)
	c.dst.DrawImage(img, op)

	if l.Focused {
		y := l.Anchor.Y + h/2 + 2
		c.line(geom.V(l.Anchor.X-w/2, y), geom.V(l.Anchor.X+w/2, y), 2, clr)
	}
}

// maxLabels bounds the label cache; the score label changes with every kill.
const maxLabels = 64

// labelImage renders text once and caches it.
func (c *ImageCanvas) labelImage(text string) *ebiten.Image {
	if text == "" {
		return nil
	}
	if img, ok := c.labels[text]; ok {
		return img
	}
	if len(c.labels) >= maxLabels {
		for k, img := range c.labels {
			img.Deallocate()
			delete(c.labels, k)
		}
	}
	img := ebiten.NewImage(glyphW*len([]rune(text)), glyphH)
	ebitenutil.DebugPrint(img, text)
	c.labels[text] = img
	return img
}

// Outline draws a collision circle.
func (c *ImageCanvas) Outline(circle geom.Circle) {
	vector.StrokeCircle(c.dst, float32(circle.Center.X), float32(circle.Center.Y),
		float32(circle.Radius), 1, palette[core.ColorGreen], true)
}

func (c *ImageCanvas) line(from, to geom.Vec2, width float32, clr color.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), width, clr, true)
}

var _ sim.Canvas = (*ImageCanvas)(nil)
