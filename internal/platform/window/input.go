package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
)

// binding maps physical keys to one action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// heldBindings are sampled as level-triggered every frame.
var heldBindings = []binding{
	{core.ActionTurnLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionTurnRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionThrust, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionReverse, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
}

// pressedBindings fire once on the frame the key goes down.
var pressedBindings = []binding{
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionMenuUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionMenuDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionDebug, []ebiten.Key{ebiten.KeyF3}},
}

// inputSource is the slice of ebiten's input API the game polls.
type inputSource interface {
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	// Click returns the cursor position if the left button went down this frame.
	Click() (x, y int, ok bool)
}

// ebitenInput reads the live keyboard and mouse.
type ebitenInput struct{}

func (ebitenInput) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (ebitenInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (ebitenInput) Click() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}

// poll fills f from src. The game's logical screen is the world viewport,
// so cursor positions are already world units.
func poll(src inputSource, f *core.InputFrame) {
	for _, b := range heldBindings {
		for _, k := range b.keys {
			if src.KeyPressed(k) {
				f.Hold(b.action)
				break
			}
		}
	}
	for _, b := range pressedBindings {
		for _, k := range b.keys {
			if src.KeyJustPressed(k) {
				f.Press(b.action)
				break
			}
		}
	}
	if x, y, ok := src.Click(); ok {
		f.ClickAt(geom.V(float64(x), float64(y)))
	}
}
