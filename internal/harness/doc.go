// Package harness replays drill scenarios deterministically.
//
// A scenario names a drill, scripts its input lines (or batch arguments)
// and states what the run must produce. Each run uses a scripted line
// source, a fixed session id and a fresh in-memory store, so the same
// scenario always yields a byte-identical transcript.
//
// # Scenario Format
//
//	name: divide-basic
//	description: "Numerator 10, denominator 2"
//	exercise: divide
//	session_id: test-session-default   # optional
//	input: ["10", "2"]
//	args:                               # batch drills only
//	  values: [4, 3, 1, 1, 3, 3, 2]
//	  k: 3
//	expect:
//	  output: "10 / 2 is 5"             # or: error: end_of_input
//	  rejections: 0                     # optional
//	  notices: 0                        # optional
//
// Exactly one of expect.output and expect.error must be set. When a run
// is expected to succeed, every scripted input line must be consumed.
//
// # Golden Files
//
// RunWithGolden compares the canonical JSON of the session transcript
// against testdata/scenarios/golden/<name>.golden. To regenerate:
//
//	go test ./internal/harness -update
package harness
