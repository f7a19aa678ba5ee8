package harness

import (
	"fmt"

	"github.com/roach88/drills/internal/exercise"
	"github.com/roach88/drills/internal/transcript"
)

// evaluate checks a finished run against the scenario's expectations and
// returns one message per mismatch.
func evaluate(
	scenario *Scenario,
	outcome *exercise.Outcome,
	runErr error,
	session *transcript.Session,
	unread []string,
) []string {
	var errs []string
	expect := scenario.Expect

	if expect.Error != "" {
		got := ErrorKind(runErr)
		if got != expect.Error {
			if runErr == nil {
				errs = append(errs, fmt.Sprintf("expected error %q, drill succeeded with %q", expect.Error, outcome.Line))
			} else {
				errs = append(errs, fmt.Sprintf("expected error %q, got %q: %v", expect.Error, got, runErr))
			}
		}
	} else {
		switch {
		case runErr != nil:
			errs = append(errs, fmt.Sprintf("expected output %q, drill failed: %v", expect.Output, runErr))
		case outcome.Line != expect.Output:
			errs = append(errs, fmt.Sprintf("output: expected %q, got %q", expect.Output, outcome.Line))
		case session.Result != expect.Output:
			errs = append(errs, fmt.Sprintf("recorded result: expected %q, got %q", expect.Output, session.Result))
		}

		if len(unread) > 0 {
			errs = append(errs, fmt.Sprintf("%d input line(s) not consumed: %q", len(unread), unread))
		}
	}

	if expect.Rejections != nil {
		if got := session.Count(transcript.KindReject); got != *expect.Rejections {
			errs = append(errs, fmt.Sprintf("rejections: expected %d, got %d", *expect.Rejections, got))
		}
	}

	if expect.Notices != nil {
		if got := session.Count(transcript.KindNotice); got != *expect.Notices {
			errs = append(errs, fmt.Sprintf("notices: expected %d, got %d", *expect.Notices, got))
		}
	}

	return errs
}
