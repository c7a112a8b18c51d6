package contact

import (
	"cargo-logistics/types"
)

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Subject string `json:"subject" validate:"required,min=1,max=255"`
	Message string `json:"message" validate:"required,min=1"`
}

func (r ContactRequest) Validate() error {
	return types.ValidateStruct(r)
}
