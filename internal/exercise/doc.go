// Package exercise implements the drills hosted by the CLI.
//
// Interactive drills (divide, sum) read validated integers through an
// intread.Reader. Batch drills (unique, block) work from arguments alone.
// Every drill reports what it prints to the session recorder in Env.
package exercise
