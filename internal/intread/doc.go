// Package intread reads validated integers from a line-oriented source.
//
// A Reader prompts, reads one line, and judges it against a Rule. Rejected
// lines produce a diagnostic and a fresh prompt; there is no retry limit.
// The only ways out of Read are a valid integer, ErrEndOfInput, a cancelled
// context, or an error from the underlying source.
//
// Accepted text must be canonical: exactly what strconv.FormatInt renders
// for some int64. Lines have their terminator removed and nothing else, so
// surrounding whitespace is rejected.
package intread
