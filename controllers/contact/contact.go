package contact

import (
	"cargo-logistics/logger"
	contactModel "cargo-logistics/models/contact"
	"cargo-logistics/types"
	contactTypes "cargo-logistics/types/contact"
	"cargo-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContactController handles the public contact form and the admin inbox.
type ContactController struct {
	DB *gorm.DB
}

// NewContactController creates a new contact controller
func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// Store takes a public contact-form submission.
func (cc *ContactController) Store(c *fiber.Ctx) error {
	var req contactTypes.ContactRequest
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

	submission := contactModel.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if req.Phone != "" {
		submission.Phone = &req.Phone
	}

	if err := cc.DB.Create(&submission).Error; err != nil {
		logger.Error("Failed to create contact submission", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Message received, we will get back to you soon",
		Data:    submission,
	})
}

// Index lists submissions for the admin inbox, newest first, paged.
func (cc *ContactController) Index(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c, 50)

	var total int64
	if err := cc.DB.Model(&contactModel.ContactSubmission{}).Count(&total).Error; err != nil {
		logger.Error("Failed to count contact submissions", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	var submissions []contactModel.ContactSubmission
	err := cc.DB.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&submissions).Error
	if err != nil {
		logger.Error("Failed to fetch contact submissions", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data: fiber.Map{
			"submissions": submissions,
			"total":       total,
		},
	})
}

// MarkRead flags one submission as handled.
func (cc *ContactController) MarkRead(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var submission contactModel.ContactSubmission
	if err := cc.DB.First(&submission, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Submission not found",
		})
	}

	if err := cc.DB.Model(&submission).Update("is_read", true).Error; err != nil {
		logger.Error("Failed to mark submission as read", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	submission.IsRead = true

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Submission marked as read",
		Data:    submission,
	})
}
