package exercise

import (
	"context"
	"fmt"
	"sort"
)

// Unique reports the least number of distinct integers left after removing
// exactly K elements from Values.
type Unique struct{}

func (Unique) Name() string      { return "unique" }
func (Unique) Summary() string   { return "least number of unique integers after removing k elements" }
func (Unique) Interactive() bool { return false }

// Run implements Exercise.
func (u Unique) Run(_ context.Context, env *Env) (*Outcome, error) {
	n, err := LeastUnique(env.Values, env.K)
	if err != nil {
		return nil, err
	}
	return finish(env, &Outcome{
		Exercise: u.Name(),
		Line:     fmt.Sprintf("least unique after removing %d: %d", env.K, n),
		Values: map[string]any{
			"k":      env.K,
			"unique": n,
		},
	})
}

// LeastUnique removes whole groups of equal values, rarest first, for as
// long as they fit in k removals. Leftover removals cannot eliminate
// another group, so they are spent without changing the count.
func LeastUnique(values []int64, k int) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeK, k)
	}

	freq := make(map[int64]int, len(values))
	for _, v := range values {
		freq[v]++
	}

	counts := make([]int, 0, len(freq))
	for _, c := range freq {
		counts = append(counts, c)
	}
	sort.Ints(counts)

	remaining := len(counts)
	for _, c := range counts {
		if c > k {
			break
		}
		k -= c
		remaining--
	}
	return remaining, nil
}
