package intread

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/drills/internal/transcript"
)

// ErrEndOfInput is returned when the source runs dry before a valid
// integer was read.
var ErrEndOfInput = errors.New("end of input")

// Reader prompts for integers until one satisfies a Rule.
type Reader struct {
	src    LineSource
	out    io.Writer
	rec    transcript.Recorder
	logger *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithRecorder reports prompts, inputs and rejections to rec.
func WithRecorder(rec transcript.Recorder) Option {
	return func(r *Reader) {
		r.rec = rec
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// NewReader creates a Reader that reads from src and writes prompts and
// diagnostics to out.
func NewReader(src LineSource, out io.Writer, opts ...Option) *Reader {
	r := &Reader{
		src:    src,
		out:    out,
		rec:    transcript.Discard,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read prompts and reads lines until one is accepted by rule.
//
// There is no attempt limit. Read returns an error wrapping ErrEndOfInput
// when the source is exhausted, ctx.Err() when the context is done, and a
// wrapped source error otherwise.
func (r *Reader) Read(ctx context.Context, prompt string, rule Rule) (int64, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if err := r.emit(transcript.KindPrompt, prompt); err != nil {
			return 0, err
		}

		line, err := r.src.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			r.rec.Record(transcript.KindEndOfInput, "")
			r.logger.Debug("input exhausted", "rule", rule.Name, "attempt", attempt)
			return 0, fmt.Errorf("%s: %w", rule.Name, ErrEndOfInput)
		}
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", rule.Name, err)
		}
		r.rec.Record(transcript.KindInput, line)

		n, rej := Validate(line, rule)
		if rej == nil {
			r.logger.Debug("input accepted", "rule", rule.Name, "value", n, "attempt", attempt)
			return n, nil
		}

		r.logger.Debug("input rejected",
			"rule", rule.Name,
			"reason", string(rej.Reason),
			"attempt", attempt,
		)
		if err := r.emit(transcript.KindReject, rej.Message); err != nil {
			return 0, err
		}
	}
}

// Emit writes text as its own line and records it under kind.
func (r *Reader) Emit(kind transcript.Kind, text string) error {
	return r.emit(kind, text)
}

func (r *Reader) emit(kind transcript.Kind, text string) error {
	r.rec.Record(kind, text)
	if _, err := fmt.Fprintln(r.out, text); err != nil {
		return fmt.Errorf("write %s: %w", kind, err)
	}
	return nil
}
