package intread

import (
	"bufio"
	"context"
	"io"
	"sync"
)

// maxLineBytes caps a single input line.
const maxLineBytes = 1 << 20

// LineSource produces one line of text per call.
//
// Implementations strip the line terminator and return io.EOF once the
// stream is exhausted.
type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

// ScannerSource reads lines from an io.Reader such as stdin.
//
// Scanning happens on a background goroutine so that a blocked read still
// returns as soon as the context is done. The goroutine reads at most one
// line ahead of the caller.
type ScannerSource struct {
	scanner *bufio.Scanner
	lines   chan scanResult
	once    sync.Once
}

type scanResult struct {
	text string
	err  error
}

// NewScannerSource wraps r in a line scanner. Both "\n" and "\r\n"
// terminators are stripped.
func NewScannerSource(r io.Reader) *ScannerSource {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineBytes)
	return &ScannerSource{
		scanner: s,
		lines:   make(chan scanResult),
	}
}

func (s *ScannerSource) scan() {
	defer close(s.lines)
	for s.scanner.Scan() {
		s.lines <- scanResult{text: s.scanner.Text()}
	}
	if err := s.scanner.Err(); err != nil {
		s.lines <- scanResult{err: err}
	}
}

// ReadLine implements LineSource. It returns ctx.Err() when the context is
// done before a line arrives.
func (s *ScannerSource) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.once.Do(func() { go s.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}
