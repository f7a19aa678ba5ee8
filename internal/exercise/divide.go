package exercise

import (
	"context"
	"fmt"
	"math/big"

	"github.com/roach88/drills/internal/intread"
)

const (
	numeratorPrompt   = ">> Please enter the numerator:"
	denominatorPrompt = ">> Please enter the denominator:"
)

// Divide reads a numerator and a non-zero denominator and prints their
// integer quotient.
type Divide struct{}

func (Divide) Name() string      { return "divide" }
func (Divide) Summary() string   { return "integer division of two validated integers" }
func (Divide) Interactive() bool { return true }

// Run implements Exercise.
func (d Divide) Run(ctx context.Context, env *Env) (*Outcome, error) {
	if env.Reader == nil {
		return nil, ErrNoReader
	}

	numerator, err := env.Reader.Read(ctx, numeratorPrompt, intread.NumeratorRule)
	if err != nil {
		return nil, err
	}
	denominator, err := env.Reader.Read(ctx, denominatorPrompt, intread.DenominatorRule)
	if err != nil {
		return nil, err
	}

	q := Quotient(numerator, denominator)
	return finish(env, &Outcome{
		Exercise: d.Name(),
		Line:     fmt.Sprintf("%d / %d is %s", numerator, denominator, q.String()),
		Values: map[string]any{
			"numerator":   numerator,
			"denominator": denominator,
			"quotient":    q,
		},
	})
}

// Quotient divides a by b, truncating toward zero like Go's / operator.
// The result is exact for every int64 pair, including MinInt64 / -1.
// b must not be zero.
func Quotient(a, b int64) *big.Int {
	return new(big.Int).Quo(big.NewInt(a), big.NewInt(b))
}
