package track

import (
	"errors"

	"cargo-logistics/logger"
	cargoService "cargo-logistics/services/cargo"
	"cargo-logistics/types"

	"github.com/gofiber/fiber/v2"
)

// TrackController serves the unauthenticated public tracking lookup. The web
// client polls it every few seconds while a tracking page is open, so it must
// answer the same request consistently and cheaply.
type TrackController struct {
	Service *cargoService.Service
}

// NewTrackController creates a new track controller
func NewTrackController(service *cargoService.Service) *TrackController {
	return &TrackController{Service: service}
}

// Track returns the composite tracking view for one tracking number.
func (tc *TrackController) Track(c *fiber.Ctx) error {
	trackingNumber := c.Params("trackingNumber")
	if trackingNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Tracking number is required",
		})
	}

	result, err := tc.Service.Track(trackingNumber)
	if err != nil {
		if errors.Is(err, cargoService.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Cargo not found. Please check your tracking number and try again.",
			})
		}
		logger.Error("Tracking lookup failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   result,
	})
}
