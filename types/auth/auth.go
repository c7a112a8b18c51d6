package auth

import (
	"cargo-logistics/types"
)

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=1"`
}

func (r LoginRequest) Validate() error {
	return types.ValidateStruct(r)
}

// RegisterRequest creates a new back-office account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r RegisterRequest) Validate() error {
	return types.ValidateStruct(r)
}
