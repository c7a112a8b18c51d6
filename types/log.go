package types

import "time"

// LogEntry represents a log entry to be stored in the database
type LogEntry struct {
	Method     string
	Path       string
	ClientIP   string
	StatusCode int
	DurationMs int64
	CreatedAt  time.Time
}
