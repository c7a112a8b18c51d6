package branch

import (
	"cargo-logistics/types"
)

// BranchRequest is the create/update payload for a company office.
type BranchRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	Address      string `json:"address" validate:"required,min=1"`
	City         string `json:"city" validate:"required,min=1,max=255"`
	Country      string `json:"country" validate:"required,min=1,max=255"`
	Phone        string `json:"phone" validate:"required,min=1,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Incharge     string `json:"incharge" validate:"omitempty,max=255"`
	Location     string `json:"location" validate:"omitempty"`
	IsMainOffice bool   `json:"is_main_office"`
	IsActive     bool   `json:"is_active"`
}

func (r BranchRequest) Validate() error {
	return types.ValidateStruct(r)
}
