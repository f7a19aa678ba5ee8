package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/drills/internal/intread"
)

// UniqueOptions holds flags for the unique command.
type UniqueOptions struct {
	*RootOptions
	K int // elements to remove
}

// NewUniqueCommand creates the unique command.
func NewUniqueCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UniqueOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "unique --k N <values...>",
		Short: "Least number of unique integers after removing k elements",
		Long: `Remove exactly k elements from the list and print the least number of
distinct integers that can remain.

Values must be canonical integers. Separate them from the flags with
"--" when any of them is negative.

Examples:
  drills unique --k 3 4 3 1 1 3 3 2
  drills unique --k 1 -- -5 -5 7`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return newFormatter(opts.RootOptions, cmd).Fail(ErrCodeInvalidArgs, ExitCommandError, "invalid arguments", err)
			}
			return runDrill(opts.RootOptions, cmd, "unique", drillArgs{Values: values, K: opts.K})
		},
	}

	cmd.Flags().IntVar(&opts.K, "k", 0, "number of elements to remove")

	return cmd
}

// parseValues converts command-line values with the same canonical rule the
// interactive drills apply to their input.
func parseValues(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, arg := range args {
		n, ok := intread.ParseCanonical(arg)
		if !ok {
			return nil, fmt.Errorf("value %d: %q is not an integer", i+1, arg)
		}
		values[i] = n
	}
	return values, nil
}

// NewBlockCommand creates the block command.
func NewBlockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "block",
		Short:         "Pass a callback to a function and call it",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrill(rootOpts, cmd, "block", drillArgs{})
		},
	}
}
