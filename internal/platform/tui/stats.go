package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-odyssey/internal/storage"
)

// Stats screen layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the totals sidebar
	sidebarWidth       = 24  // Width of totals sidebar
	maxSessions        = 200 // Max sessions to load
)

// frontendFilters are the tabs of the stats screen; "" shows everything.
var frontendFilters = []string{"", "tui", "window", "ssh"}

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next frontend"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev frontend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel browses the session journal.
type StatsModel struct {
	sessions    []storage.Session // every loaded session, newest first
	totals      storage.Totals
	filter      int // index into frontendFilters
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewStatsModel loads recent sessions and totals from store.
func NewStatsModel(store *storage.Store, width, height int) (StatsModel, error) {
	sessions, err := store.RecentSessions(maxSessions)
	if err != nil {
		return StatsModel{}, err
	}
	totals, err := store.SessionTotals()
	if err != nil {
		return StatsModel{}, err
	}
	return newStatsModel(sessions, totals, width, height), nil
}

func newStatsModel(sessions []storage.Session, totals storage.Totals, width, height int) StatsModel {
	m := StatsModel{
		sessions:    sessions,
		totals:      totals,
		keys:        DefaultStatsKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 12},
		{Title: "Via", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Time", Width: 7},
		{Title: "Kills", Width: 6},
		{Title: "Deaths", Width: 6},
		{Title: "Shots", Width: 6},
	}

	// Give the player column whatever is left over
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra > 0 {
		columns[2].Width += min(extra, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// visible returns the sessions matching the current filter.
func (m *StatsModel) visible() []storage.Session {
	want := frontendFilters[m.filter]
	if want == "" {
		return m.sessions
	}
	out := make([]storage.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if s.Frontend == want {
			out = append(out, s)
		}
	}
	return out
}

// updateTableRows refills the table for the current filter.
func (m *StatsModel) updateTableRows() {
	sessions := m.visible()
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = SessionRow(s)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SessionRow formats one journal entry as table cells.
func SessionRow(s storage.Session) table.Row {
	player := s.Player
	if player == "" {
		player = "-"
	}
	played := "open"
	if !s.EndedAt.IsZero() {
		played = s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
	}
	return table.Row{
		s.StartedAt.Local().Format("Jan 02 15:04"),
		s.Frontend,
		player,
		played,
		fmt.Sprintf("%d", s.Destroyed),
		fmt.Sprintf("%d", s.Deaths),
		fmt.Sprintf("%d", s.Shots),
	}
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(frontendFilters)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + len(frontendFilters) - 1) % len(frontendFilters)
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("FLIGHT LOG - "+filterTitle(m.filter), m.width)))
	b.WriteString("\n\n")

	body := m.renderTable()
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "   ", body)
	}
	b.WriteString(body)

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m StatsModel) renderTable() string {
	if len(m.table.Rows()) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Render("No sessions recorded yet.\nRun 'odyssey play' to start one.")
	}
	return m.table.View()
}

// renderSidebar shows the all-time totals of finished sessions.
func (m StatsModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	t := m.totals
	var sb strings.Builder
	sb.WriteString("Totals\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Sessions  %d\n", t.Sessions)
	fmt.Fprintf(&sb, "Kills     %d\n", t.Destroyed)
	fmt.Fprintf(&sb, "Deaths    %d\n", t.Deaths)
	fmt.Fprintf(&sb, "Shots     %d\n", t.Shots)
	fmt.Fprintf(&sb, "Accuracy  %s", Accuracy(t.Destroyed, t.Shots))
	return sidebarStyle.Render(sb.String())
}

// Accuracy formats kills per shot as a percentage.
func Accuracy(destroyed, shots int) string {
	if shots == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", 100*float64(destroyed)/float64(shots))
}

func filterTitle(i int) string {
	if frontendFilters[i] == "" {
		return "ALL"
	}
	return strings.ToUpper(frontendFilters[i])
}

// centerText pads text to center it in width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunStats shows the stats screen until the user quits.
func RunStats(store *storage.Store, width, height int) error {
	m, err := NewStatsModel(store, width, height)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
