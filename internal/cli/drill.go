package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/drills/internal/exercise"
	"github.com/roach88/drills/internal/intread"
	"github.com/roach88/drills/internal/store"
	"github.com/roach88/drills/internal/transcript"
)

// DrillResult is the JSON payload of a completed drill.
type DrillResult struct {
	SessionID string         `json:"session_id"`
	Exercise  string         `json:"exercise"`
	Line      string         `json:"line"`
	Values    map[string]any `json:"values,omitempty"`
}

// drillArgs are the batch arguments passed through to exercise.Env.
type drillArgs struct {
	Values []int64
	K      int
}

// runDrill runs the named drill against the command's stdin and reports the
// outcome. With --db the session is recorded even when the drill fails.
func runDrill(opts *RootOptions, cmd *cobra.Command, name string, args drillArgs) error {
	f := newFormatter(opts, cmd)
	ctx := cmd.Context()

	ex, err := exercise.Lookup(name)
	if err != nil {
		return f.Fail(ErrCodeUnknownExercise, ExitCommandError, "unknown drill", err)
	}

	session := transcript.NewSession(idGenerator(opts).Generate(), ex.Name())
	logger := slog.Default().With("exercise", ex.Name(), "session", session.ID)

	// Prompts and results go to stdout in text mode. In JSON mode stdout
	// carries only the response, so the conversation moves to stderr.
	console := cmd.OutOrStdout()
	if opts.Format == "json" {
		console = cmd.ErrOrStderr()
	}

	env := &exercise.Env{
		Out:      console,
		Recorder: session,
		Values:   args.Values,
		K:        args.K,
	}
	if ex.Interactive() {
		env.Reader = intread.NewReader(intread.NewScannerSource(cmd.InOrStdin()), console,
			intread.WithRecorder(session),
			intread.WithLogger(logger),
		)
	}

	logger.Debug("drill started")
	outcome, runErr := ex.Run(ctx, env)

	if opts.Database != "" {
		if err := recordSession(context.WithoutCancel(ctx), opts.Database, session); err != nil {
			return f.Fail(ErrCodeDatabase, ExitCommandError, "failed to record session", err)
		}
		f.VerboseLog("Recorded session %s to %s", session.ID, opts.Database)
	}

	if runErr != nil {
		logger.Debug("drill failed", "error", runErr)
		return failDrill(f, runErr)
	}

	if opts.Format == "json" {
		return f.Success(DrillResult{
			SessionID: session.ID,
			Exercise:  outcome.Exercise,
			Line:      outcome.Line,
			Values:    outcome.Values,
		})
	}
	// Text mode: the result line was already printed by the drill.
	return nil
}

// failDrill maps a drill error onto an error code and exit code.
func failDrill(f *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, intread.ErrEndOfInput):
		return f.Fail(ErrCodeEndOfInput, ExitFailure, "input ended before the drill finished", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return f.Fail(ErrCodeCancelled, ExitFailure, "drill interrupted", err)
	case errors.Is(err, exercise.ErrNegativeK):
		return f.Fail(ErrCodeInvalidArgs, ExitCommandError, "invalid arguments", err)
	case errors.Is(err, exercise.ErrUnknownExercise):
		return f.Fail(ErrCodeUnknownExercise, ExitCommandError, "unknown drill", err)
	default:
		return f.Fail(ErrCodeDrill, ExitFailure, "drill failed", err)
	}
}

func recordSession(ctx context.Context, path string, session *transcript.Session) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	return st.WriteSession(ctx, session)
}

func idGenerator(opts *RootOptions) transcript.IDGenerator {
	if opts.IDGenerator != nil {
		return opts.IDGenerator
	}
	return transcript.UUIDv7Generator{}
}

// newInteractiveCommand builds a command for a drill that reads stdin.
func newInteractiveCommand(opts *RootOptions, name, long string) *cobra.Command {
	ex, err := exercise.Lookup(name)
	if err != nil {
		panic(fmt.Sprintf("drill %q is not registered", name))
	}

	return &cobra.Command{
		Use:           name,
		Short:         ex.Summary(),
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrill(opts, cmd, name, drillArgs{})
		},
	}
}

// NewDivideCommand creates the divide command.
func NewDivideCommand(rootOpts *RootOptions) *cobra.Command {
	return newInteractiveCommand(rootOpts, "divide", `Ask for a numerator and a denominator and print their quotient.

The quotient is truncated toward zero. A denominator of 0 is refused
and asked for again, as is any text that is not a canonical integer.

Exit codes:
  0 - Quotient printed
  1 - Input ended before both numbers were read
  2 - Command error

Examples:
  drills divide
  printf '10\n0\n3\n' | drills divide
  drills divide --db ~/.drills/history.db`)
}

// NewSumCommand creates the sum command.
func NewSumCommand(rootOpts *RootOptions) *cobra.Command {
	return newInteractiveCommand(rootOpts, "sum", `Ask for two non-zero integers of opposite sign and print their sum.

When both integers have the same sign the pair is discarded and both
are asked for again.

Exit codes:
  0 - Sum printed
  1 - Input ended before a valid pair was read
  2 - Command error

Examples:
  drills sum
  printf '4\n-6\n' | drills sum --format json`)
}
