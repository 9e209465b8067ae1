package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/session"
	"github.com/vovakirdan/space-odyssey/internal/sim"
)

// maxStep caps the simulated time of a single tick so a stalled terminal
// does not teleport entities across the field.
const maxStep = 0.1

// Model is the Bubble Tea model running one World.
type Model struct {
	world    *sim.World
	recorder *session.Recorder
	screen   *core.Screen
	canvas   *CellCanvas
	keys     KeyMap
	help     help.Model
	holds    *holdTracker
	frame    core.InputFrame
	config   core.RuntimeConfig
	last     time.Time
	quitting bool
}

// NewModel creates a model for world. recorder may be nil.
func NewModel(world *sim.World, recorder *session.Recorder, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	world.SetDebug(cfg.Debug)

	m := Model{
		world:    world,
		recorder: recorder,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		holds:    newHoldTracker(keyHoldDuration),
		frame:    core.NewInputFrame(),
		config:   cfg,
	}
	m.canvas = NewCellCanvas(m.screen, world.Viewport())
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.frame.ClickAt(m.canvas.ClickPoint(msg.X, msg.Y))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case tea.BlurMsg:
		m.holds.release()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key to actions. Steering actions go through the hold
// tracker; everything else is edge-triggered for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	for _, a := range m.keys.Actions(msg) {
		switch {
		case a == core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case isHeldAction(a):
			m.holds.touch(a, now)
		default:
			m.frame.Press(a)
		}
	}
	return m, nil
}

// handleTick advances the world by the real time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.last.IsZero() {
		dt = min(now.Sub(m.last).Seconds(), maxStep)
	}
	m.last = now

	m.holds.apply(&m.frame, now)
	m.world.Step(m.frame, dt)
	m.frame.Clear()

	if m.recorder != nil {
		m.recorder.Observe(m.world.Events())
	} else {
		m.world.Events()
	}

	if m.world.ExitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// layout sizes the playfield to the terminal minus the help footer.
func (m *Model) layout() {
	m.help.Width = m.config.ScreenW
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 1))
	m.canvas.Fit()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.world.Render(m.canvas)
	return renderFrame(m.screen, m.help.View(m.keys))
}

// World returns the simulated world.
func (m Model) World() *sim.World {
	return m.world
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(world *sim.World, recorder *session.Recorder, cfg core.RuntimeConfig) error {
	model := NewModel(world, recorder, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
