package testimonial

import (
	"cargo-logistics/logger"
	testimonialModel "cargo-logistics/models/testimonial"
	"cargo-logistics/types"
	testimonialTypes "cargo-logistics/types/testimonial"
	"cargo-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TestimonialController handles public submissions and admin moderation.
type TestimonialController struct {
	DB *gorm.DB
}

// NewTestimonialController creates a new testimonial controller
func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// Store takes a public submission. It lands unapproved.
func (tc *TestimonialController) Store(c *fiber.Ctx) error {
	var req testimonialTypes.TestimonialRequest
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

	t := testimonialModel.Testimonial{
		CustomerName: req.CustomerName,
		Content:      req.Content,
		Rating:       req.Rating,
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	if req.CustomerLocation != "" {
		t.CustomerLocation = &req.CustomerLocation
	}

	if err := tc.DB.Create(&t).Error; err != nil {
		logger.Error("Failed to create testimonial", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Thank you for your feedback",
		Data:    t,
	})
}

// PublicIndex lists approved testimonials only.
func (tc *TestimonialController) PublicIndex(c *fiber.Ctx) error {
	var testimonials []testimonialModel.Testimonial
	err := tc.DB.Where("is_approved = ?", true).Order("created_at DESC").Find(&testimonials).Error
	if err != nil {
		logger.Error("Failed to fetch testimonials", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   testimonials,
	})
}

// AdminIndex lists every testimonial for moderation.
func (tc *TestimonialController) AdminIndex(c *fiber.Ctx) error {
	var testimonials []testimonialModel.Testimonial
	err := tc.DB.Order("created_at DESC").Find(&testimonials).Error
	if err != nil {
		logger.Error("Failed to fetch testimonials", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   testimonials,
	})
}

// Approve publishes one testimonial.
func (tc *TestimonialController) Approve(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var t testimonialModel.Testimonial
	if err := tc.DB.First(&t, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Testimonial not found",
		})
	}

	if err := tc.DB.Model(&t).Update("is_approved", true).Error; err != nil {
		logger.Error("Failed to approve testimonial", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	t.IsApproved = true

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Testimonial approved",
		Data:    t,
	})
}

// Reject deletes one testimonial.
func (tc *TestimonialController) Reject(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := tc.DB.Delete(&testimonialModel.Testimonial{}, id).Error; err != nil {
		logger.Error("Failed to delete testimonial", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
