package intread

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/drills/internal/testutil"
	"github.com/roach88/drills/internal/transcript"
)

func TestReader_AcceptsCanonicalInput(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(testutil.Lines("42"), &out)

	n, err := r.Read(context.Background(), ">> Enter:", NumeratorRule)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Equal(t, ">> Enter:\n", out.String())
}

func TestReader_RepromptsOnNonCanonicalInput(t *testing.T) {
	var out bytes.Buffer
	src := testutil.Lines("042", "42")
	r := NewReader(src, &out)

	n, err := r.Read(context.Background(), ">> Enter:", NumeratorRule)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Equal(t, 2, src.Consumed())

	want := ">> Enter:\n" +
		">> Invalid input. Only integers are allowed.\n" +
		">> Enter:\n"
	assert.Equal(t, want, out.String())
}

func TestReader_DenominatorZeroMessage(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(testutil.Lines("0", "5"), &out)

	n, err := r.Read(context.Background(), ">> Please enter the denominator:", DenominatorRule)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	want := ">> Please enter the denominator:\n" +
		">> Invalid input. A denominator of 0 is not allowed.\n" +
		">> Please enter the denominator:\n"
	assert.Equal(t, want, out.String())
}

func TestReader_NoRetryLimit(t *testing.T) {
	lines := make([]string, 0, 1001)
	for i := 0; i < 1000; i++ {
		lines = append(lines, "nope")
	}
	lines = append(lines, "7")

	var out bytes.Buffer
	rec := transcript.NewSession("s", "test")
	r := NewReader(testutil.Lines(lines...), &out, WithRecorder(rec))

	n, err := r.Read(context.Background(), "?", NonZeroRule)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, 1000, rec.Count(transcript.KindReject))
	assert.Equal(t, 1001, rec.Count(transcript.KindPrompt))
}

func TestReader_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	rec := transcript.NewSession("s", "test")
	r := NewReader(testutil.Lines("abc"), &out, WithRecorder(rec))

	_, err := r.Read(context.Background(), "?", NumeratorRule)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEndOfInput)
	assert.Equal(t, 1, rec.Count(transcript.KindEndOfInput))
}

func TestReader_SourceError(t *testing.T) {
	boom := errors.New("disk on fire")
	src := testutil.Lines()
	src.Err = boom

	r := NewReader(src, io.Discard)
	_, err := r.Read(context.Background(), "?", NumeratorRule)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrEndOfInput)
}

func TestReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	r := NewReader(testutil.Lines("1"), &out)
	_, err := r.Read(ctx, "?", NumeratorRule)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String(), "no prompt after cancellation")
}

func TestReader_Idempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		r := NewReader(testutil.Lines("-17"), io.Discard)
		n, err := r.Read(context.Background(), "?", NonZeroRule)
		require.NoError(t, err)
		assert.Equal(t, int64(-17), n)
	}
}

func TestReader_RecordsTranscript(t *testing.T) {
	rec := transcript.NewSession("s", "test")
	r := NewReader(testutil.Lines("x", "3"), io.Discard, WithRecorder(rec))

	_, err := r.Read(context.Background(), "?", NonZeroRule)
	require.NoError(t, err)

	kinds := make([]transcript.Kind, len(rec.Events))
	for i, e := range rec.Events {
		kinds[i] = e.Kind
		assert.Equal(t, int64(i+1), e.Seq)
	}
	assert.Equal(t, []transcript.Kind{
		transcript.KindPrompt,
		transcript.KindInput,
		transcript.KindReject,
		transcript.KindPrompt,
		transcript.KindInput,
	}, kinds)
	assert.Equal(t, []string{"x", "3"}, rec.Inputs())
}

func TestReader_Emit(t *testing.T) {
	var out bytes.Buffer
	rec := transcript.NewSession("s", "test")
	r := NewReader(testutil.Lines(), &out, WithRecorder(rec))

	require.NoError(t, r.Emit(transcript.KindResult, "done"))
	assert.Equal(t, "done\n", out.String())
	assert.Equal(t, "done", rec.Result)
}

func TestScannerSource(t *testing.T) {
	src := NewScannerSource(strings.NewReader("42\r\n 7\n\nlast"))
	ctx := context.Background()

	var got []string
	for {
		line, err := src.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, line)
	}

	assert.Equal(t, []string{"42", " 7", "", "last"}, got)
}

func TestScannerSource_WithReader(t *testing.T) {
	var out bytes.Buffer
	src := NewScannerSource(strings.NewReader("007\n-3\n"))
	r := NewReader(src, &out)

	n, err := r.Read(context.Background(), "?", NumeratorRule)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), n)
}

func TestScannerSource_CancelWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewReader(NewScannerSource(pr), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := r.Read(ctx, "?", NumeratorRule)
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Read still blocked after the context was cancelled")
	}
}

func TestScannerSource_LineAfterTimeoutIsNotLost(t *testing.T) {
	pr, pw := io.Pipe()
	src := NewScannerSource(pr)

	// Times out while the scanner is blocked on the empty pipe.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := src.ReadLine(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = io.WriteString(pw, "5\n")
		pw.Close()
	}()

	line, err := src.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5", line)

	_, err = src.ReadLine(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
