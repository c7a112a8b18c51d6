package faq

import (
	"time"
)

// Faq is one question/answer pair on the public FAQ page.
type Faq struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Faq model
func (Faq) TableName() string {
	return "faqs"
}
