package cargo

import (
	"errors"
	"fmt"

	"cargo-logistics/logger"
	cargoModel "cargo-logistics/models/cargo"
	cargoService "cargo-logistics/services/cargo"
	"cargo-logistics/types"
	cargoTypes "cargo-logistics/types/cargo"
	"cargo-logistics/utils"

	"github.com/gofiber/fiber/v2"
)

// CargoController handles the admin-side cargo endpoints.
type CargoController struct {
	Service *cargoService.Service
	Logger  *logger.AsyncLogger
}

// NewCargoController creates a new cargo controller
func NewCargoController(service *cargoService.Service, asyncLogger *logger.AsyncLogger) *CargoController {
	return &CargoController{
		Service: service,
		Logger:  asyncLogger,
	}
}

// respondServiceError translates the cargo service's typed failures into HTTP
// statuses. Unexpected store errors are logged and answered generically.
func respondServiceError(c *fiber.Ctx, err error) error {
	var vErr *cargoService.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: vErr.Error(),
		})
	case errors.Is(err, cargoService.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cargo not found",
		})
	case errors.Is(err, cargoService.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Tracking number conflict, please retry",
		})
	default:
		logger.Error("Cargo operation failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// Store creates a new cargo with a generated tracking number.
func (cc *CargoController) Store(c *fiber.Ctx) error {
	var req cargoTypes.CargoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	created, err := cc.Service.Create(req)
	if err != nil {
		return respondServiceError(c, err)
	}

	logger.Success(fmt.Sprintf("Cargo created with tracking number %s", created.TrackingNumber))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Cargo created successfully",
		Data:    created,
	})
}

// Index returns one page of cargo, newest first.
func (cc *CargoController) Index(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c, 50)

	list, total, err := cc.Service.List(page, limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data: fiber.Map{
			"cargo": list,
			"total": total,
		},
	})
}

// Show returns one cargo by id.
func (cc *CargoController) Show(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	item, err := cc.Service.GetByID(id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   item,
	})
}

// UpdateStatus moves the coarse status field only. The status timeline is a
// separate admin action (AddStatusHistory).
func (cc *CargoController) UpdateStatus(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req cargoTypes.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	updated, err := cc.Service.UpdateStatus(id, cargoModel.CargoStatus(req.Status))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cargo status updated",
		Data:    updated,
	})
}

// Update applies a whitelisted partial edit of customer and shipment details.
func (cc *CargoController) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req cargoTypes.CargoDetailsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	updated, err := cc.Service.UpdateDetails(id, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cargo details updated",
		Data:    updated,
	})
}

// Destroy deletes a cargo along with its flight segments and status history.
func (cc *CargoController) Destroy(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := cc.Service.Delete(id); err != nil {
		return respondServiceError(c, err)
	}

	logger.Info(fmt.Sprintf("Cargo %d deleted", id))
	return c.SendStatus(fiber.StatusNoContent)
}

// ListStatusHistory returns the timeline for one cargo, newest first.
func (cc *CargoController) ListStatusHistory(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	history, err := cc.Service.ListStatusHistory(id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   history,
	})
}

// AddStatusHistory appends one timeline entry.
func (cc *CargoController) AddStatusHistory(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req cargoTypes.StatusHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	entry, err := cc.Service.AddStatusHistory(id, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Status history entry added",
		Data:    entry,
	})
}

// ListFlightSegments returns the legs of one cargo in storage order.
func (cc *CargoController) ListFlightSegments(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	segments, err := cc.Service.ListFlightSegments(id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   segments,
	})
}

// AddFlightSegment appends one leg to an existing cargo.
func (cc *CargoController) AddFlightSegment(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req cargoTypes.FlightSegmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	segment, err := cc.Service.AddFlightSegment(id, req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Flight segment added",
		Data:    segment,
	})
}

// UpdateFlightSegment edits one leg of a cargo.
func (cc *CargoController) UpdateFlightSegment(c *fiber.Ctx) error {
	cargoID, err := utils.ParseIDParam(c, "cargoId")
	if err != nil {
		return err
	}
	segmentID, err := utils.ParseIDParam(c, "segmentId")
	if err != nil {
		return err
	}

	var req cargoTypes.FlightSegmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	segment, err := cc.Service.UpdateFlightSegment(cargoID, segmentID, req)
	if err != nil {
		if errors.Is(err, cargoService.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Flight segment not found",
			})
		}
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Flight segment updated",
		Data:    segment,
	})
}
