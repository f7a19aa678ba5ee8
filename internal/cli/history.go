package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/roach88/drills/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Exercise string // filter by drill
	Limit    int    // maximum sessions listed
	Session  string // show one session's transcript
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded drill sessions",
		Long: `List sessions recorded with --db, most recent first, or show the full
transcript of one session.

Examples:
  drills history --db ~/.drills/history.db
  drills history --db ~/.drills/history.db --exercise sum --limit 5
  drills history --db ~/.drills/history.db --session <id> --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Exercise, "exercise", "", "only list sessions of this drill")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of sessions (0 = all)")
	cmd.Flags().StringVar(&opts.Session, "session", "", "show the transcript of this session")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)

	if opts.Database == "" {
		return f.Fail(ErrCodeInvalidArgs, ExitCommandError, "history needs a database (--db or DRILLS_DB)", nil)
	}

	f.VerboseLog("Opening history %s", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return f.Fail(ErrCodeDatabase, ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if opts.Session != "" {
		return showSession(f, st, opts.Session, cmd)
	}

	f.VerboseLog("Listing sessions (exercise=%q, limit=%d)", opts.Exercise, opts.Limit)
	sessions, err := st.ListSessions(cmd.Context(), opts.Exercise, opts.Limit)
	if err != nil {
		return f.Fail(ErrCodeDatabase, ExitCommandError, "failed to list sessions", err)
	}

	if opts.Format == "json" {
		return f.Success(sessions)
	}

	w := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Session", "Drill", "Events", "Result")
	for _, s := range sessions {
		result := s.Result
		if !s.Completed() {
			result = "(incomplete)"
		}
		table.Append([]string{s.ID, s.Exercise, strconv.Itoa(s.EventCount), result})
	}
	table.Render()
	return nil
}

func showSession(f *OutputFormatter, st *store.Store, id string, cmd *cobra.Command) error {
	session, err := st.ReadSession(cmd.Context(), id)
	if errors.Is(err, store.ErrSessionNotFound) {
		return f.Fail(ErrCodeNotFound, ExitFailure, "session not found", err)
	}
	if err != nil {
		return f.Fail(ErrCodeDatabase, ExitCommandError, "failed to read session", err)
	}

	if f.Format == "json" {
		return f.Success(session.Snapshot())
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Session %s (%s)\n", session.ID, session.Exercise)

	table := tablewriter.NewWriter(w)
	table.Header("Seq", "Kind", "Text")
	for _, e := range session.Events {
		table.Append([]string{strconv.FormatInt(e.Seq, 10), string(e.Kind), e.Text})
	}
	table.Render()
	return nil
}
