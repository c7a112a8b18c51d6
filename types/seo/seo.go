package seo

import (
	"cargo-logistics/types"
)

// SeoSettingRequest upserts the metadata for one marketing page.
type SeoSettingRequest struct {
	Page        string `json:"page" validate:"required,min=1,max=255"`
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required,min=1"`
	Keywords    string `json:"keywords" validate:"omitempty"`
	OgImage     string `json:"og_image" validate:"omitempty"`
}

func (r SeoSettingRequest) Validate() error {
	return types.ValidateStruct(r)
}
