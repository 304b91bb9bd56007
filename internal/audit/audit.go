package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/unveil/internal/configs"
)

// TimestampFormat is the layout of Entry.Timestamp.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single history log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // Operation name.

	// Optional fields depending on operation.
	RunID      string `json:"run_id,omitempty"`     // For play.
	Preset     string `json:"preset,omitempty"`     // For play and preset changes.
	Chars      int    `json:"chars,omitempty"`      // For play.
	Ticks      int    `json:"ticks,omitempty"`      // For play.
	ElapsedMs  int64  `json:"elapsed_ms,omitempty"` // For play.
	Direction  string `json:"direction,omitempty"`  // For play.
	Sequential bool   `json:"sequential,omitempty"` // For play.
	Completed  bool   `json:"completed,omitempty"`  // For play.
}

// NewEntry returns an entry for op stamped with the current time.
func NewEntry(op string) Entry {
	return Entry{
		Timestamp: time.Now().UTC().Format(TimestampFormat),
		Operation: op,
	}
}

// Time parses the entry timestamp. It returns the zero time if the
// timestamp is missing or malformed.
func (e Entry) Time() time.Time {
	t, err := time.Parse(TimestampFormat, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Log appends an entry to the history log.
// If logging fails, it does not return an error.
// Operations should not fail just because history logging failed.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the history log file.
// Returns empty string if no data directory is configured.
func LogPath() string {
	if configs.UserUnveilSettings == nil || configs.UserUnveilSettings.UserDataPath == "" {
		return ""
	}
	return configs.HistoryPath()
}

// ReadEntries reads all entries from the history log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into history entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// Last returns at most n of the most recent entries, oldest first.
// A non-positive n returns every entry.
func Last(entries []Entry, n int) []Entry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
