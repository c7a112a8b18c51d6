package log

import (
	"time"
)

// Log is one HTTP request record written by the async logger: method, path,
// caller, response status and timing. Bodies are never captured.
type Log struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method     string    `gorm:"type:varchar(10);not null" json:"method"`
	Path       string    `gorm:"type:text;not null" json:"path"`
	ClientIP   string    `gorm:"type:varchar(64)" json:"client_ip"`
	StatusCode int       `gorm:"type:int" json:"status_code"`
	DurationMs int64     `gorm:"type:bigint" json:"duration_ms"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Log model
func (Log) TableName() string {
	return "logs"
}
