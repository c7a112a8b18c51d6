package testimonial

import (
	"cargo-logistics/types"
)

// TestimonialRequest is the public submission payload. Approval happens later
// via an admin action, never through this request.
type TestimonialRequest struct {
	CustomerName     string `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerLocation string `json:"customer_location" validate:"omitempty,max=255"`
	Content          string `json:"content" validate:"required,min=1"`
	Rating           int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

func (r TestimonialRequest) Validate() error {
	return types.ValidateStruct(r)
}
