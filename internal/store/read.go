package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/drills/internal/transcript"
)

// ErrSessionNotFound is returned when a session id is not stored.
var ErrSessionNotFound = errors.New("session not found")

// SessionSummary is one row of the history listing.
type SessionSummary struct {
	ID         string `json:"id"`
	Exercise   string `json:"exercise"`
	Result     string `json:"result"`
	EventCount int    `json:"event_count"`
}

// Completed reports whether the session produced a result.
func (s SessionSummary) Completed() bool {
	return s.Result != ""
}

// ListSessions returns stored sessions, most recently written first.
// An empty exercise lists every drill; limit <= 0 means no limit.
func (s *Store) ListSessions(ctx context.Context, exercise string, limit int) ([]SessionSummary, error) {
	query := `SELECT id, exercise, result, event_count FROM sessions`
	var args []any
	if exercise != "" {
		query += ` WHERE exercise = ?`
		args = append(args, exercise)
	}
	query += ` ORDER BY rowid DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	summaries := []SessionSummary{}
	for rows.Next() {
		var sum SessionSummary
		if err := rows.Scan(&sum.ID, &sum.Exercise, &sum.Result, &sum.EventCount); err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return summaries, nil
}

// ReadSession loads a session and its events ordered by seq.
func (s *Store) ReadSession(ctx context.Context, id string) (*transcript.Session, error) {
	var exercise, result string
	err := s.db.QueryRowContext(ctx, `
		SELECT exercise, result FROM sessions WHERE id = ?
	`, id).Scan(&exercise, &result)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, kind, text FROM events
		WHERE session_id = ?
		ORDER BY seq ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("read events %s: %w", id, err)
	}
	defer rows.Close()

	var events []transcript.Event
	for rows.Next() {
		var e transcript.Event
		var kind string
		if err := rows.Scan(&e.Seq, &kind, &e.Text); err != nil {
			return nil, fmt.Errorf("read events %s: %w", id, err)
		}
		e.Kind = transcript.Kind(kind)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read events %s: %w", id, err)
	}

	return transcript.Restore(id, exercise, result, events), nil
}
