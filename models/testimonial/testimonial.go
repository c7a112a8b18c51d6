package testimonial

import (
	"time"
)

// Testimonial is a customer quote. Submissions land unapproved and only show
// on the public site once an admin approves them.
type Testimonial struct {
	ID               uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName     string  `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerLocation *string `gorm:"type:varchar(255)" json:"customer_location,omitempty"`
	Content          string  `gorm:"type:text;not null" json:"content"`
	Rating           int     `gorm:"default:5" json:"rating"`

	IsApproved bool `gorm:"default:false" json:"is_approved"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Testimonial model
func (Testimonial) TableName() string {
	return "testimonials"
}
