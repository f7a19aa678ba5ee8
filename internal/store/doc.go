// Package store provides SQLite-backed history of drill sessions.
//
// Each recorded session is one row in sessions plus its transcript in
// events, keyed by (session_id, seq). Events are always read back in seq
// order; seq is the session's logical clock, never a timestamp.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
