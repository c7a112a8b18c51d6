package blog

import (
	"time"

	"cargo-logistics/models/user"
)

// BlogPost is a marketing article. Only published posts are visible on the
// public site.
type BlogPost struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string  `gorm:"type:varchar(255);not null" json:"title"`
	Slug       string  `gorm:"type:varchar(255);not null;unique" json:"slug"`
	Excerpt    *string `gorm:"type:text" json:"excerpt,omitempty"`
	Content    string  `gorm:"type:text;not null" json:"content"`
	CoverImage *string `gorm:"type:text" json:"cover_image,omitempty"`
	Category   string  `gorm:"type:varchar(255);not null;default:General" json:"category"`

	IsPublished bool `gorm:"default:false" json:"is_published"`

	// Foreign key for users relationship
	AuthorID *uint      `gorm:"index" json:"author_id,omitempty"`
	Author   *user.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the BlogPost model
func (BlogPost) TableName() string {
	return "blog_posts"
}
