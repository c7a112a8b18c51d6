package faq

import (
	"cargo-logistics/logger"
	faqModel "cargo-logistics/models/faq"
	"cargo-logistics/types"
	faqTypes "cargo-logistics/types/faq"
	"cargo-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FaqController handles public and admin FAQ endpoints.
type FaqController struct {
	DB *gorm.DB
}

// NewFaqController creates a new FAQ controller
func NewFaqController(db *gorm.DB) *FaqController {
	return &FaqController{DB: db}
}

// PublicIndex lists active FAQs for the public site.
func (fc *FaqController) PublicIndex(c *fiber.Ctx) error {
	var faqs []faqModel.Faq
	if err := fc.DB.Where("is_active = ?", true).Find(&faqs).Error; err != nil {
		logger.Error("Failed to fetch faqs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   faqs,
	})
}

// AdminIndex lists FAQs, optionally filtered by ?isActive.
func (fc *FaqController) AdminIndex(c *fiber.Ctx) error {
	query := fc.DB.Model(&faqModel.Faq{})
	if v := c.Query("isActive"); v != "" {
		query = query.Where("is_active = ?", v == "true")
	}

	var faqs []faqModel.Faq
	if err := query.Find(&faqs).Error; err != nil {
		logger.Error("Failed to fetch faqs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   faqs,
	})
}

// Store creates one FAQ entry.
func (fc *FaqController) Store(c *fiber.Ctx) error {
	var req faqTypes.FaqRequest
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

	entry := faqModel.Faq{
		Question: req.Question,
		Answer:   req.Answer,
		IsActive: req.IsActive,
	}
	if err := fc.DB.Create(&entry).Error; err != nil {
		logger.Error("Failed to create faq", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "FAQ created",
		Data:    entry,
	})
}

// Update edits one FAQ entry.
func (fc *FaqController) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req faqTypes.FaqRequest
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

	var entry faqModel.Faq
	if err := fc.DB.First(&entry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "FAQ not found",
		})
	}

	entry.Question = req.Question
	entry.Answer = req.Answer
	entry.IsActive = req.IsActive
	if err := fc.DB.Save(&entry).Error; err != nil {
		logger.Error("Failed to update faq", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "FAQ updated",
		Data:    entry,
	})
}

// Destroy deletes one FAQ entry.
func (fc *FaqController) Destroy(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := fc.DB.Delete(&faqModel.Faq{}, id).Error; err != nil {
		logger.Error("Failed to delete faq", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
