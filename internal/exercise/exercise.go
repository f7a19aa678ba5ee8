package exercise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/roach88/drills/internal/intread"
	"github.com/roach88/drills/internal/transcript"
)

// Sentinel errors.
var (
	ErrUnknownExercise = errors.New("unknown exercise")
	ErrNoReader        = errors.New("interactive exercise needs a reader")
	ErrNegativeK       = errors.New("k must not be negative")
)

// Env carries everything a drill needs for one run.
type Env struct {
	// Reader supplies validated integers. Required for interactive drills.
	Reader *intread.Reader

	// Out receives printed lines.
	Out io.Writer

	// Recorder receives transcript events. Nil means discard.
	Recorder transcript.Recorder

	// Values and K are the arguments of batch drills.
	Values []int64
	K      int
}

// Emit prints text as a line and records it under kind.
// When a Reader is present it is used so output interleaves with prompts.
func (e *Env) Emit(kind transcript.Kind, text string) error {
	if e.Reader != nil {
		return e.Reader.Emit(kind, text)
	}
	e.recorder().Record(kind, text)
	if _, err := fmt.Fprintln(e.out(), text); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	return nil
}

func (e *Env) recorder() transcript.Recorder {
	if e.Recorder == nil {
		return transcript.Discard
	}
	return e.Recorder
}

func (e *Env) out() io.Writer {
	if e.Out == nil {
		return io.Discard
	}
	return e.Out
}

// Outcome is what a completed drill produced.
type Outcome struct {
	Exercise string         `json:"exercise"`
	Line     string         `json:"line"`
	Values   map[string]any `json:"values,omitempty"`
}

// Exercise is a single drill.
type Exercise interface {
	Name() string
	Summary() string
	Interactive() bool
	Run(ctx context.Context, env *Env) (*Outcome, error)
}

var registry = map[string]Exercise{}

func register(ex Exercise) {
	registry[ex.Name()] = ex
}

func init() {
	register(Divide{})
	register(Sum{})
	register(Unique{})
	register(Block{})
}

// Lookup returns the drill with the given name.
func Lookup(name string) (Exercise, error) {
	ex, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}
	return ex, nil
}

// All returns every drill sorted by name.
func All() []Exercise {
	all := make([]Exercise, 0, len(registry))
	for _, ex := range registry {
		all = append(all, ex)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}

// Names returns the sorted drill names.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, ex := range all {
		names[i] = ex.Name()
	}
	return names
}

func finish(env *Env, out *Outcome) (*Outcome, error) {
	if err := env.Emit(transcript.KindResult, out.Line); err != nil {
		return nil, err
	}
	return out, nil
}
