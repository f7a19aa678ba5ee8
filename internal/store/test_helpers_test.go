package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/drills/internal/transcript"
)

// createTestStore creates a new file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestSession builds a completed divide session.
func createTestSession(id string) *transcript.Session {
	sess := transcript.NewSession(id, "divide")
	sess.Record(transcript.KindPrompt, ">> Please enter the numerator:")
	sess.Record(transcript.KindInput, "10")
	sess.Record(transcript.KindPrompt, ">> Please enter the denominator:")
	sess.Record(transcript.KindInput, "2")
	sess.Record(transcript.KindResult, "10 / 2 is 5")
	return sess
}

// pragmaValue reads a single PRAGMA setting as text.
func pragmaValue(t *testing.T, s *Store, name string) string {
	t.Helper()
	var value string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		t.Fatalf("PRAGMA %s failed: %v", name, err)
	}
	return value
}
