package faq

import (
	"cargo-logistics/types"
)

// FaqRequest is the create/update payload for a FAQ entry.
type FaqRequest struct {
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer" validate:"required,min=1"`
	IsActive bool   `json:"is_active"`
}

func (r FaqRequest) Validate() error {
	return types.ValidateStruct(r)
}
