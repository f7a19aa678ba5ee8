package harness

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/drills/internal/exercise"
	"github.com/roach88/drills/internal/intread"
	"github.com/roach88/drills/internal/testutil"
)

func intPtr(n int) *int { return &n }

func TestRun_AllScenarioFilesPass(t *testing.T) {
	entries, err := os.ReadDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", entry.Name()))
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestRun_DivideOutput(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "divide",
		Exercise: "divide",
		Input:    []string{"10", "2"},
		Expect:   Expect{Output: "10 / 2 is 5"},
	})
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)

	want := ">> Please enter the numerator:\n" +
		">> Please enter the denominator:\n" +
		"10 / 2 is 5\n"
	assert.Equal(t, want, result.Output)
	assert.Equal(t, testutil.DefaultSessionID, result.Session.ID)
	assert.Equal(t, "10 / 2 is 5", result.Session.Result)
	assert.Empty(t, result.ErrorKind)
}

func TestRun_CustomSessionID(t *testing.T) {
	result, err := Run(&Scenario{
		Name:      "block",
		Exercise:  "block",
		SessionID: "fixed-123",
		Expect:    Expect{Output: "Block being called in the method!"},
	})
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Equal(t, "fixed-123", result.Session.ID)
}

func TestRun_WrongOutputFails(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "wrong",
		Exercise: "divide",
		Input:    []string{"10", "2"},
		Expect:   Expect{Output: "10 / 2 is 6"},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `expected "10 / 2 is 6"`)
}

func TestRun_UnconsumedInputFails(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "extra",
		Exercise: "sum",
		Input:    []string{"3", "-4", "99"},
		Expect:   Expect{Output: "3 + -4 = -1"},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "1 input line(s) not consumed")
}

func TestRun_UnexpectedEndOfInput(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "short",
		Exercise: "divide",
		Input:    []string{"10"},
		Expect:   Expect{Output: "10 / 2 is 5"},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Equal(t, ErrorEndOfInput, result.ErrorKind)
	assert.Contains(t, result.Errors[0], "drill failed")
}

func TestRun_ExpectedErrorButSucceeded(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "no-error",
		Exercise: "sum",
		Input:    []string{"3", "-4"},
		Expect:   Expect{Error: ErrorEndOfInput},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "drill succeeded")
}

func TestRun_CountMismatch(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "counts",
		Exercise: "sum",
		Input:    []string{"0", "3", "4", "3", "-4"},
		Expect: Expect{
			Output:     "3 + -4 = -1",
			Rejections: intPtr(2),
			Notices:    intPtr(0),
		},
	})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "rejections: expected 2, got 1")
	assert.Contains(t, result.Errors[1], "notices: expected 0, got 2")
}

func TestRun_UnknownExercise(t *testing.T) {
	_, err := Run(&Scenario{Name: "x", Exercise: "multiply"})
	assert.ErrorIs(t, err, exercise.ErrUnknownExercise)
}

func TestRunContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := RunContext(ctx, &Scenario{
		Name:     "cancelled",
		Exercise: "divide",
		Input:    []string{"10", "2"},
		Expect:   Expect{Error: ErrorCancelled},
	})
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Output)
}

func TestRun_Deterministic(t *testing.T) {
	scenario := &Scenario{
		Name:     "repeat",
		Exercise: "sum",
		Input:    []string{"3", "4", "-1", "1"},
		Expect:   Expect{Output: "-1 + 1 = 0"},
	}

	first, err := Run(scenario)
	require.NoError(t, err)
	firstJSON, err := first.Session.Canonical()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := Run(scenario)
		require.NoError(t, err)
		againJSON, err := again.Session.Canonical()
		require.NoError(t, err)
		assert.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("denominator: %w", intread.ErrEndOfInput), ErrorEndOfInput},
		{fmt.Errorf("%w: -1", exercise.ErrNegativeK), ErrorNegativeK},
		{context.Canceled, ErrorCancelled},
		{context.DeadlineExceeded, ErrorCancelled},
		{errors.New("boom"), ErrorOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorKind(tt.err))
	}
}
