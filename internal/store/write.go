package store

import (
	"context"
	"fmt"

	"github.com/roach88/drills/internal/transcript"
)

// WriteSession stores a session and its events in one transaction.
//
// Uses INSERT OR IGNORE for idempotency: writing the same session id twice
// keeps the first copy.
func (s *Store) WriteSession(ctx context.Context, sess *transcript.Session) error {
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("write session: missing session id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO sessions (id, exercise, result, event_count)
		VALUES (?, ?, ?, ?)
	`, sess.ID, sess.Exercise, sess.Result, len(sess.Events))
	if err != nil {
		return fmt.Errorf("write session %s: %w", sess.ID, err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("write session %s: %w", sess.ID, err)
	}
	if inserted == 0 {
		// Already stored
		return tx.Commit()
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (session_id, seq, kind, text)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write session %s: %w", sess.ID, err)
	}
	defer stmt.Close()

	for _, e := range sess.Events {
		if _, err := stmt.ExecContext(ctx, sess.ID, e.Seq, string(e.Kind), e.Text); err != nil {
			return fmt.Errorf("write event %s/%d: %w", sess.ID, e.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write session %s: %w", sess.ID, err)
	}
	return nil
}
