package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Session is one play session in the journal.
type Session struct {
	ID        int64
	Frontend  string // "tui", "window" or "ssh"
	Player    string // SSH user, empty for local play
	Seed      int64
	Frames    int64
	Shots     int
	Destroyed int
	Deaths    int
	StartedAt time.Time
	EndedAt   time.Time // zero while the session is open
}

// SessionStats are the counters written when a session ends.
type SessionStats struct {
	Frames    int64
	Shots     int
	Destroyed int
	Deaths    int
}

// Totals aggregates every finished session.
type Totals struct {
	Sessions  int
	Frames    int64
	Shots     int
	Destroyed int
	Deaths    int
}

// StartSession opens a journal entry and returns its ID.
func (s *Store) StartSession(frontend, player string, seed int64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (frontend, player, seed) VALUES (?, ?, ?)",
		frontend, player, seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// FinishSession records the final counters and closes the entry.
func (s *Store) FinishSession(id int64, stats SessionStats) error {
	res, err := s.db.Exec(
		`UPDATE sessions
		 SET frames = ?, shots = ?, destroyed = ?, deaths = ?, ended_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		stats.Frames, stats.Shots, stats.Destroyed, stats.Deaths, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: cannot finish session %d: %w", id, sql.ErrNoRows)
	}
	return nil
}

// RecentSessions returns the latest sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, frontend, player, seed, frames, shots, destroyed, deaths, started_at, ended_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var startedAt, endedAt any
		if err := rows.Scan(&e.ID, &e.Frontend, &e.Player, &e.Seed, &e.Frames,
			&e.Shots, &e.Destroyed, &e.Deaths, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.StartedAt = parseTime(startedAt)
		e.EndedAt = parseTime(endedAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// SessionTotals sums the counters of finished sessions.
func (s *Store) SessionTotals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(SUM(shots), 0),
		        COALESCE(SUM(destroyed), 0), COALESCE(SUM(deaths), 0)
		 FROM sessions
		 WHERE ended_at IS NOT NULL`,
	).Scan(&t.Sessions, &t.Frames, &t.Shots, &t.Destroyed, &t.Deaths)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	return t, nil
}
