package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/drills/internal/config"
	"github.com/roach88/drills/internal/transcript"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Database   string // session history path; empty disables recording
	ConfigFile string

	// IDGenerator allows overriding session ids (for testing).
	// If nil, defaults to transcript.UUIDv7Generator.
	IDGenerator transcript.IDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCommand()
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	// ExitErrors have already been reported by the command.
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return ExitCommandError
}

// NewRootCommand creates the root command for the drills CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drills",
		Short: "Practice drills on validated integer input",
		Long: `Practice drills built around a validated integer prompt.

Interactive drills (divide, sum) keep asking until the input is a canonical
integer: no leading zeros, no whitespace, no "+" sign. Sessions can be
recorded to a SQLite history with --db and replayed from YAML scenarios.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(opts, cmd); err != nil {
				return err
			}
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			setupLogging(opts, cmd)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "record sessions to this SQLite database")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default is $HOME/.drills/config.yaml)")

	cmd.AddCommand(NewDivideCommand(opts))
	cmd.AddCommand(NewSumCommand(opts))
	cmd.AddCommand(NewUniqueCommand(opts))
	cmd.AddCommand(NewBlockCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// applyConfig fills options the user did not set on the command line from
// the config file and DRILLS_* environment variables.
func applyConfig(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("db") {
		opts.Database = cfg.Database
	}
	if !flags.Changed("format") && cfg.Format != "" {
		opts.Format = cfg.Format
	}
	return nil
}

// setupLogging installs the default slog logger on stderr. Warnings only,
// unless --verbose, so prompts stay readable.
func setupLogging(opts *RootOptions, cmd *cobra.Command) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// newFormatter builds the formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}
