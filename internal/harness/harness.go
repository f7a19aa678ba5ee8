package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/drills/internal/exercise"
	"github.com/roach88/drills/internal/intread"
	"github.com/roach88/drills/internal/store"
	"github.com/roach88/drills/internal/testutil"
	"github.com/roach88/drills/internal/transcript"
)

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Create a fresh in-memory store
//  2. Run the drill against scripted input with a fixed session id
//  3. Write the session to the store and read it back
//  4. Evaluate expectations against the stored transcript
//
// Run returns an error only when the harness itself fails (unknown drill,
// store failure). Drill errors are part of the result.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, scenario *Scenario) (*Result, error) {
	ex, err := exercise.Lookup(scenario.Exercise)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	ids := testutil.NewFixedIDGenerator(scenario.SessionID)
	session := transcript.NewSession(ids.Generate(), ex.Name())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in scenarios

	var out bytes.Buffer
	src := testutil.Lines(scenario.Input...)
	env := &exercise.Env{
		Out:      &out,
		Recorder: session,
	}
	if ex.Interactive() {
		env.Reader = intread.NewReader(src, &out,
			intread.WithRecorder(session),
			intread.WithLogger(logger),
		)
	}
	if scenario.Args != nil {
		env.Values = scenario.Args.Values
		env.K = scenario.Args.K
	}

	outcome, runErr := ex.Run(ctx, env)

	// Record even when the drill was cancelled.
	storeCtx := context.WithoutCancel(ctx)
	if err := st.WriteSession(storeCtx, session); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}
	stored, err := st.ReadSession(storeCtx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read session back: %w", err)
	}

	result := NewResult()
	result.Session = stored
	result.Output = out.String()
	result.ErrorKind = ErrorKind(runErr)

	for _, msg := range evaluate(scenario, outcome, runErr, stored, src.Remaining()) {
		result.AddError(msg)
	}

	return result, nil
}

// ErrorKind classifies a drill error into one of the scenario error kinds.
// A nil error yields "".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, intread.ErrEndOfInput):
		return ErrorEndOfInput
	case errors.Is(err, exercise.ErrNegativeK):
		return ErrorNegativeK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorCancelled
	default:
		return ErrorOther
	}
}
