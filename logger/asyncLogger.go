package logger

import (
	"log"

	log_model "cargo-logistics/models/log"
	"cargo-logistics/types"

	"gorm.io/gorm"
)

// AsyncLogger persists request logs to the database off the request path.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100), // Buffered channel to hold log entries
	}
}

// ProcessLog drains the channel and writes rows. Run it in its own goroutine.
func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous logger...")

	for logEntry := range logger.channel {
		dbLog := log_model.Log{
			Method:     logEntry.Method,
			Path:       logEntry.Path,
			ClientIP:   logEntry.ClientIP,
			StatusCode: logEntry.StatusCode,
			DurationMs: logEntry.DurationMs,
			CreatedAt:  logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert new log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel. Drops the entry when the buffer is
// full rather than blocking a request.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	select {
	case logger.channel <- entry:
	default:
	}
}
