// Package window runs Space Odyssey in a desktop window with ebiten.
// The logical screen is the world viewport, so one world unit is one pixel
// before ebiten scales the frame to the window.
package window

import (
	"errors"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/session"
	"github.com/vovakirdan/space-odyssey/internal/sim"
)

// Title is the window caption.
const Title = "Space Odyssey"

// Options configures the window.
type Options struct {
	TickRate int
	Debug    bool
	Textures Textures
	Logger   *log.Logger
}

// Game adapts a World to ebiten.Game.
type Game struct {
	world    *sim.World
	recorder *session.Recorder
	canvas   *ImageCanvas
	input    inputSource
	frame    core.InputFrame
	tickRate int
	logger   *log.Logger
}

// NewGame wires world to an ebiten game loop. recorder may be nil.
func NewGame(world *sim.World, recorder *session.Recorder, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	world.SetDebug(opts.Debug)

	return &Game{
		world:    world,
		recorder: recorder,
		canvas:   NewImageCanvas(opts.Textures),
		input:    ebitenInput{},
		frame:    core.NewInputFrame(),
		tickRate: opts.TickRate,
		logger:   opts.Logger,
	}
}

// Update advances the world by one fixed tick.
func (g *Game) Update() error {
	poll(g.input, &g.frame)
	g.world.Step(g.frame, 1/float64(g.tickRate))
	g.frame.Clear()

	events := g.world.Events()
	if g.recorder != nil {
		g.recorder.Observe(events)
	}

	if g.world.ExitRequested() {
		g.logger.Debug("Exit selected from menu")
		return ebiten.Termination
	}
	return nil
}

// Draw renders the world.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.target(screen)
	g.world.Render(g.canvas)
}

// Layout keeps the logical screen at the world viewport size.
func (g *Game) Layout(_, _ int) (int, int) {
	vp := g.world.Viewport()
	return int(vp.W), int(vp.H)
}

// Run opens the window and blocks until it is closed or EXIT is chosen.
func Run(world *sim.World, recorder *session.Recorder, opts Options) error {
	game := NewGame(world, recorder, opts)

	vp := world.Viewport()
	ebiten.SetWindowSize(int(vp.W), int(vp.H))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.tickRate)
	if opts.Textures.Icon != nil {
		ebiten.SetWindowIcon([]image.Image{opts.Textures.Icon})
	}

	err := ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
