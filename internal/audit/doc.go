// Package audit records playback history for unveil.
//
// Every played run (and every preset change) is appended to a user-level
// history log. The history command reads it back to show what was played,
// with which preset, and how long the reveal took.
//
// # Log Format
//
// The history log is stored as JSON Lines (one JSON object per line) at:
//
//	<UserDataPath>/history.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Operation name
//   - Operation-specific details (run id, preset, tick count, etc.)
//
// # Usage
//
//	entry := audit.NewEntry("play")
//	entry.RunID = result.RunID
//	entry.Ticks = result.Ticks
//	audit.Log(entry)
//
// # Failure Handling
//
// History logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the history log for display. Malformed entries
// are silently skipped to handle partial writes.
package audit
