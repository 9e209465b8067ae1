package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-odyssey/internal/config"
	"github.com/vovakirdan/space-odyssey/internal/core"
	"github.com/vovakirdan/space-odyssey/internal/geom"
	"github.com/vovakirdan/space-odyssey/internal/sim"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionTurnLeft}},
		{"d", runeKey('d'), []core.Action{core.ActionTurnRight}},
		{"up doubles as menu up", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionThrust, core.ActionMenuUp}},
		{"s doubles as menu down", runeKey('s'), []core.Action{core.ActionReverse, core.ActionMenuDown}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionFire}},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, []core.Action{core.ActionBack}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"p", runeKey('p'), []core.Action{core.ActionPause}},
		{"q", runeKey('q'), []core.Action{core.ActionQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}},
		{"unbound", runeKey('z'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.Actions(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("Actions(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Actions(%q)[%d] = %v, expected %v", tt.msg.String(), i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHoldTrackerWindow(t *testing.T) {
	h := newHoldTracker(100 * time.Millisecond)
	start := time.Unix(1000, 0)
	h.touch(core.ActionThrust, start)

	f := core.NewInputFrame()
	h.apply(&f, start.Add(50*time.Millisecond))
	if !f.IsHeld(core.ActionThrust) {
		t.Error("thrust should still be held inside the window")
	}

	f.Clear()
	h.apply(&f, start.Add(150*time.Millisecond))
	if f.IsHeld(core.ActionThrust) {
		t.Error("thrust should be released after the window")
	}
	if len(h.last) != 0 {
		t.Errorf("expired keys should be forgotten, got %v", h.last)
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := newHoldTracker(time.Second)
	now := time.Unix(1000, 0)
	h.touch(core.ActionTurnLeft, now)
	h.release()

	f := core.NewInputFrame()
	h.apply(&f, now)
	if f.IsHeld(core.ActionTurnLeft) {
		t.Error("released keys should not be held")
	}
}

func TestIsHeldAction(t *testing.T) {
	for _, a := range []core.Action{core.ActionTurnLeft, core.ActionTurnRight, core.ActionThrust, core.ActionReverse} {
		if !isHeldAction(a) {
			t.Errorf("%v should be held", a)
		}
	}
	for _, a := range []core.Action{core.ActionFire, core.ActionPause, core.ActionBack, core.ActionConfirm} {
		if isHeldAction(a) {
			t.Errorf("%v should be edge-triggered", a)
		}
	}
}

func TestCellCanvasMapping(t *testing.T) {
	screen := core.NewScreen(80, 30)
	c := NewCellCanvas(screen, geom.Rect{W: 800, H: 600})

	tests := []struct {
		p    geom.Vec2
		x, y int
	}{
		{geom.V(0, 0), 0, 0},
		{geom.V(9.9, 19.9), 0, 0},
		{geom.V(400, 300), 40, 15},
		{geom.V(799, 599), 79, 29},
		{geom.V(-10, -20), -1, -1},
	}
	for _, tt := range tests {
		x, y := c.ToCell(tt.p)
		if x != tt.x || y != tt.y {
			t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.x, tt.y)
		}
	}

	if got := c.ToWorld(40, 15); got.Distance(geom.V(405, 310)) > 1e-6 {
		t.Errorf("ToWorld(40, 15) = %v, expected cell center (405, 310)", got)
	}
}

func TestCellCanvasFitAfterResize(t *testing.T) {
	screen := core.NewScreen(80, 30)
	c := NewCellCanvas(screen, geom.Rect{W: 800, H: 600})
	screen.Resize(160, 60)
	c.Fit()

	if x, y := c.ToCell(geom.V(400, 300)); x != 80 || y != 30 {
		t.Errorf("after resize center maps to (%d, %d), expected (80, 30)", x, y)
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, '▲'},
		{90, '▶'},
		{180, '▼'},
		{270, '◀'},
		{-90, '◀'},
		{359, '▲'},
		{720 + 45, '◥'},
	}
	for _, tt := range tests {
		if got := shipGlyph(tt.rotation); got != tt.want {
			t.Errorf("shipGlyph(%v) = %q, expected %q", tt.rotation, got, tt.want)
		}
	}
}

func TestCellCanvasRockAndText(t *testing.T) {
	screen := core.NewScreen(80, 30)
	c := NewCellCanvas(screen, geom.Rect{W: 800, H: 600})
	c.Background()

	c.Rock(geom.V(380, 280), geom.V(40, 40), 0)
	if got := screen.Get(40, 15); got != '#' {
		t.Errorf("rock center cell = %q, expected '#'", got)
	}

	c.Text(sim.Label{Text: "PLAY", Anchor: geom.V(400, 100), Focused: true})
	if row := screen.Row(5); !strings.Contains(row, "> PLAY <") {
		t.Errorf("focused label should carry a cursor, row = %q", row)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	screen := core.NewScreen(5, 2)
	screen.DrawText(0, 0, "ab", core.ColorRed)
	screen.DrawText(3, 0, "c", core.ColorRed)
	screen.DrawText(0, 1, "xyz", core.ColorDefault)

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("second line should contain text, got %q", lines[1])
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	world := sim.NewWorld(config.DefaultOdysseyConfig(), sim.NewRandom(1), nil)
	return NewModel(world, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelConfirmStartsGame(t *testing.T) {
	m := newTestModel(t)
	if m.World().State().Mode != sim.ModeMenu {
		t.Fatalf("new world should open on the menu")
	}

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := step(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.World().State().Mode; got != sim.ModeGame {
		t.Errorf("mode after confirm = %v, expected GAME", got)
	}
}

func TestModelClickStartsGame(t *testing.T) {
	m := newTestModel(t)
	x, y := m.canvas.ToCell(geom.V(400, 300))

	m, _ = step(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = step(t, m, TickMsg(time.Now()))
	if got := m.World().State().Mode; got != sim.ModeGame {
		t.Errorf("clicking PLAY should start the game, mode = %v", got)
	}
}

func TestCellCanvasClickPointOnShortScreen(t *testing.T) {
	screen := core.NewScreen(80, 12)
	c := NewCellCanvas(screen, geom.Rect{W: 800, H: 600})
	play := sim.Label{Text: "PLAY", Anchor: geom.V(400, 300), FontSize: sim.LabelFontSize}

	c.Background()
	c.Text(play)

	// Row 6 holds the label, but its cell center lies below the 30 unit tall text box.
	if play.Contains(c.ToWorld(39, 6)) {
		t.Fatal("cell center unexpectedly inside the label")
	}
	for x := 38; x < 42; x++ {
		if p := c.ClickPoint(x, 6); !play.Contains(p) {
			t.Errorf("ClickPoint(%d, 6) = %v, should hit the drawn label", x, p)
		}
	}
	if p := c.ClickPoint(42, 6); play.Contains(p) {
		t.Errorf("ClickPoint past the label = %v, should miss", p)
	}

	c.Background()
	if p := c.ClickPoint(39, 6); play.Contains(p) {
		t.Error("labels from the previous frame should be forgotten")
	}
}

func TestModelClickDrawnLabelOnShortTerminal(t *testing.T) {
	world := sim.NewWorld(config.DefaultOdysseyConfig(), sim.NewRandom(1), nil)
	m := NewModel(world, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 14, TickRate: 60})
	m.View()

	x, y := findText(t, m.screen, "PLAY")
	m, _ = step(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = step(t, m, TickMsg(time.Now()))
	if got := m.World().State().Mode; got != sim.ModeGame {
		t.Errorf("clicking the drawn PLAY should start the game, mode = %v", got)
	}
}

// findText returns the cell of the first rune of text on screen.
func findText(t *testing.T, s *core.Screen, text string) (int, int) {
	t.Helper()
	want := []rune(text)
	for y := range s.Height() {
		row := []rune(s.Row(y))
		for x := 0; x+len(want) <= len(row); x++ {
			if string(row[x:x+len(want)]) == text {
				return x, y
			}
		}
	}
	t.Fatalf("%q not drawn on screen:\n%s", text, s.String())
	return 0, 0
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := step(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelDtIsCapped(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()
	m, _ = step(t, m, TickMsg(start))
	m, _ = step(t, m, TickMsg(start.Add(5*time.Second)))

	if clock := m.World().State().Clock; clock > 1.0/60+maxStep+1e-9 {
		t.Errorf("clock = %v, a stalled tick should be capped at %v", clock, maxStep)
	}
}

func TestModelLayoutLeavesFooter(t *testing.T) {
	m := newTestModel(t)
	if m.screen.Height() >= 24 {
		t.Errorf("playfield height %d should leave room for the help footer", m.screen.Height())
	}
	if m.screen.Width() != 80 {
		t.Errorf("playfield width = %d, expected 80", m.screen.Width())
	}
}
