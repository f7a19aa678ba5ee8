package testutil

import (
	"context"
	"io"
)

// ScriptedSource replays a fixed sequence of input lines.
//
// Once the lines are used up ReadLine returns Err, or io.EOF when Err is
// nil. Tests use it to drive interactive drills and assert termination.
type ScriptedSource struct {
	lines []string
	next  int

	// Err is returned after the last line instead of io.EOF.
	Err error
}

// Lines creates a ScriptedSource over the given lines.
func Lines(lines ...string) *ScriptedSource {
	return &ScriptedSource{lines: lines}
}

// ReadLine implements intread.LineSource.
func (s *ScriptedSource) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.next >= len(s.lines) {
		if s.Err != nil {
			return "", s.Err
		}
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Consumed returns how many lines have been read.
func (s *ScriptedSource) Consumed() int {
	return s.next
}

// Remaining returns the lines that have not been read yet.
func (s *ScriptedSource) Remaining() []string {
	return s.lines[s.next:]
}
