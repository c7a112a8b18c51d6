package cargo

import (
	"time"
)

// StatusHistory is one immutable timeline entry for a cargo's status
// narrative. Entries are appended by admin actions and only ever removed when
// the owning cargo is deleted.
type StatusHistory struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for cargo relationship
	CargoID uint  `gorm:"not null;index" json:"cargo_id"`
	Cargo   Cargo `gorm:"foreignKey:CargoID" json:"-"`

	Status   string  `gorm:"type:varchar(255);not null" json:"status"`
	Details  *string `gorm:"type:text" json:"details,omitempty"`
	Location *string `gorm:"type:varchar(255)" json:"location,omitempty"`

	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// TableName sets the table name for the StatusHistory model
func (StatusHistory) TableName() string {
	return "cargo_status_history"
}
