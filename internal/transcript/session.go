package transcript

// Session is the transcript of a single drill run.
//
// A Session is a Recorder. It is not safe for concurrent use; drills are
// single-threaded.
type Session struct {
	ID       string
	Exercise string
	Result   string
	Events   []Event

	clock *Clock
}

// NewSession creates an empty session.
func NewSession(id, exercise string) *Session {
	return &Session{
		ID:       id,
		Exercise: exercise,
		Events:   []Event{},
		clock:    NewClock(),
	}
}

// Restore rebuilds a session from stored events. Recording further events
// continues after the highest stored seq.
func Restore(id, exercise, result string, events []Event) *Session {
	s := NewSession(id, exercise)
	s.Result = result

	var last int64
	for _, e := range events {
		s.Events = append(s.Events, e)
		last = max(last, e.Seq)
	}
	s.clock = NewClockAt(last)
	return s
}

// Record implements Recorder. A KindResult event also sets Result.
func (s *Session) Record(kind Kind, text string) {
	s.Events = append(s.Events, Event{
		Seq:  s.clock.Next(),
		Kind: kind,
		Text: text,
	})
	if kind == KindResult {
		s.Result = text
	}
}

// Count returns the number of events of the given kind.
func (s *Session) Count(kind Kind) int {
	n := 0
	for _, e := range s.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Inputs returns the input lines in the order they were read.
func (s *Session) Inputs() []string {
	var lines []string
	for _, e := range s.Events {
		if e.Kind == KindInput {
			lines = append(lines, e.Text)
		}
	}
	return lines
}

// Snapshot converts the session to plain maps and slices suitable for
// MarshalCanonical. Result is omitted when empty.
func (s *Session) Snapshot() map[string]any {
	events := make([]any, len(s.Events))
	for i, e := range s.Events {
		events[i] = map[string]any{
			"seq":  e.Seq,
			"kind": string(e.Kind),
			"text": e.Text,
		}
	}

	snap := map[string]any{
		"session_id": s.ID,
		"exercise":   s.Exercise,
		"events":     events,
	}
	if s.Result != "" {
		snap["result"] = s.Result
	}
	return snap
}

// Canonical returns the canonical JSON encoding of Snapshot.
func (s *Session) Canonical() ([]byte, error) {
	return MarshalCanonical(s.Snapshot())
}
