package testutil

// DefaultSessionID is used when a scenario does not set one.
const DefaultSessionID = "test-session-default"

// FixedIDGenerator generates the same session id every time.
//
// This enables deterministic test execution and golden transcript
// comparison: the same scenario always produces a byte-identical snapshot.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator that always returns id.
// If id is empty, Generate() returns DefaultSessionID.
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = DefaultSessionID
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed session id.
//
// Implements transcript.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
