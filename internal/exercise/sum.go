package exercise

import (
	"context"
	"fmt"

	"github.com/roach88/drills/internal/intread"
	"github.com/roach88/drills/internal/transcript"
)

const (
	sumPrompt      = ">> Please enter a positive or negative integer:"
	oppositeNotice = ">> Sorry. One integer must be positive, one must be negative."
	startOver      = ">> Please start over."
)

// Sum reads two non-zero integers with opposite signs and prints their sum.
// Both numbers are requested again until the pair qualifies.
type Sum struct{}

func (Sum) Name() string      { return "sum" }
func (Sum) Summary() string   { return "sum of a positive and a negative integer" }
func (Sum) Interactive() bool { return true }

// Run implements Exercise.
func (s Sum) Run(ctx context.Context, env *Env) (*Outcome, error) {
	if env.Reader == nil {
		return nil, ErrNoReader
	}

	for {
		first, err := env.Reader.Read(ctx, sumPrompt, intread.NonZeroRule)
		if err != nil {
			return nil, err
		}
		second, err := env.Reader.Read(ctx, sumPrompt, intread.NonZeroRule)
		if err != nil {
			return nil, err
		}

		if OppositeSigns(first, second) {
			total := first + second
			return finish(env, &Outcome{
				Exercise: s.Name(),
				Line:     fmt.Sprintf("%d + %d = %d", first, second, total),
				Values: map[string]any{
					"first":  first,
					"second": second,
					"sum":    total,
				},
			})
		}

		if err := env.Emit(transcript.KindNotice, oppositeNotice); err != nil {
			return nil, err
		}
		if err := env.Emit(transcript.KindNotice, startOver); err != nil {
			return nil, err
		}
	}
}

// OppositeSigns reports whether exactly one of a and b is negative and the
// other positive. Zero has no sign.
func OppositeSigns(a, b int64) bool {
	return (a < 0 && b > 0) || (a > 0 && b < 0)
}
