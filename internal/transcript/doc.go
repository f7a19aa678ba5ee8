// Package transcript records what a drill session printed and read.
//
// This is the foundational layer: every other internal package may import
// transcript, and transcript imports nothing internal.
//
// Events are stamped with a logical sequence number, never a wall-clock
// time, so a scripted session produces a byte-identical canonical snapshot
// on every run.
package transcript
