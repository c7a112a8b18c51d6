package blog

import (
	"cargo-logistics/types"
)

// BlogPostRequest is the create/update payload for a marketing article.
type BlogPostRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Slug        string `json:"slug" validate:"required,min=1,max=255"`
	Excerpt     string `json:"excerpt" validate:"omitempty"`
	Content     string `json:"content" validate:"required,min=1"`
	CoverImage  string `json:"cover_image" validate:"omitempty"`
	Category    string `json:"category" validate:"omitempty,max=255"`
	IsPublished bool   `json:"is_published"`
}

func (r BlogPostRequest) Validate() error {
	return types.ValidateStruct(r)
}
