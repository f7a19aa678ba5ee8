package harness

import "github.com/roach88/drills/internal/transcript"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success: every expectation matched.
	Pass bool `json:"pass"`

	// Session is the transcript as read back from the store.
	Session *transcript.Session `json:"-"`

	// Output is everything the drill printed.
	Output string `json:"output"`

	// ErrorKind classifies the drill's error, empty on success.
	ErrorKind string `json:"error_kind,omitempty"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
