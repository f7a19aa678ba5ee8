package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roach88/drills/internal/testutil"
)

const testSessionID = "cli-session"

// isolateConfig points config lookup at an empty home directory and clears
// DRILLS_* variables so the developer's own settings don't leak in.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DRILLS_DB", "")
	t.Setenv("DRILLS_FORMAT", "")
}

// runCLI executes the root command with the given stdin and arguments.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	isolateConfig(t)

	opts := &RootOptions{IDGenerator: testutil.NewFixedIDGenerator(testSessionID)}
	cmd := newRootCommand(opts)

	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
