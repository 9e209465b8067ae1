package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-odyssey/internal/storage"
)

func sampleSessions() []storage.Session {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []storage.Session{
		{ID: 3, Frontend: "ssh", Player: "alice", StartedAt: start, EndedAt: start.Add(90 * time.Second), Destroyed: 12, Shots: 30, Deaths: 1},
		{ID: 2, Frontend: "tui", StartedAt: start.Add(-time.Hour)},
		{ID: 1, Frontend: "window", StartedAt: start.Add(-2 * time.Hour), EndedAt: start.Add(-time.Hour), Destroyed: 4, Shots: 8},
	}
}

func TestStatsFilterCycles(t *testing.T) {
	m := newStatsModel(sampleSessions(), storage.Totals{Sessions: 2}, 100, 30)
	if got := len(m.table.Rows()); got != 3 {
		t.Fatalf("unfiltered rows = %d, expected 3", got)
	}

	want := []int{1, 1, 1, 3} // tui, window, ssh, back to all
	for i, n := range want {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(StatsModel)
		if got := len(m.table.Rows()); got != n {
			t.Errorf("step %d (%s): rows = %d, expected %d", i, filterTitle(m.filter), got, n)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(StatsModel)
	if frontendFilters[m.filter] != "ssh" {
		t.Errorf("shift+tab from ALL should wrap to ssh, got %q", frontendFilters[m.filter])
	}
}

func TestSessionRow(t *testing.T) {
	s := sampleSessions()

	row := SessionRow(s[0])
	if row[1] != "ssh" || row[2] != "alice" || row[3] != "1m30s" || row[4] != "12" {
		t.Errorf("finished ssh row = %v", row)
	}

	row = SessionRow(s[1])
	if row[2] != "-" || row[3] != "open" {
		t.Errorf("open local row should show '-' player and 'open', got %v", row)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		destroyed, shots int
		want             string
	}{
		{0, 0, "-"},
		{1, 4, "25%"},
		{2, 3, "67%"},
		{5, 5, "100%"},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.destroyed, tt.shots); got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %q, expected %q", tt.destroyed, tt.shots, got, tt.want)
		}
	}
}

func TestStatsViewEmptyAndSidebar(t *testing.T) {
	m := newStatsModel(nil, storage.Totals{}, 100, 30)
	view := m.View()
	if !strings.Contains(view, "No sessions recorded yet") {
		t.Error("empty journal should show a hint")
	}
	if !strings.Contains(view, "Totals") {
		t.Error("wide terminal should show the totals sidebar")
	}

	narrow := newStatsModel(nil, storage.Totals{}, 60, 30)
	if strings.Contains(narrow.View(), "Totals") {
		t.Error("narrow terminal should hide the sidebar")
	}
}

func TestStatsQuit(t *testing.T) {
	m := newStatsModel(sampleSessions(), storage.Totals{}, 100, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.(StatsModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
