package contact

import (
	"time"
)

// ContactSubmission is one message from the public contact form. Admins work
// through them in the inbox and mark them read.
type ContactSubmission struct {
	ID      uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Email   string  `gorm:"type:varchar(255);not null" json:"email"`
	Phone   *string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Subject string  `gorm:"type:varchar(255);not null" json:"subject"`
	Message string  `gorm:"type:text;not null" json:"message"`

	IsRead bool `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the ContactSubmission model
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
