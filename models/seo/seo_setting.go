package seo

import (
	"time"
)

// SeoSetting holds per-page metadata for the marketing site, keyed by page
// slug (home, services, blog, ...).
type SeoSetting struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Page        string  `gorm:"type:varchar(255);not null;unique" json:"page"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Keywords    *string `gorm:"type:text" json:"keywords,omitempty"`
	OgImage     *string `gorm:"type:text" json:"og_image,omitempty"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the SeoSetting model
func (SeoSetting) TableName() string {
	return "seo_settings"
}
