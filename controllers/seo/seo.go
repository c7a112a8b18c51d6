package seo

import (
	"errors"

	"cargo-logistics/logger"
	seoModel "cargo-logistics/models/seo"
	"cargo-logistics/types"
	seoTypes "cargo-logistics/types/seo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SeoController serves page metadata to the public site and lets admins
// upsert it.
type SeoController struct {
	DB *gorm.DB
}

// NewSeoController creates a new SEO controller
func NewSeoController(db *gorm.DB) *SeoController {
	return &SeoController{DB: db}
}

// Show returns the metadata for one page slug.
func (sc *SeoController) Show(c *fiber.Ctx) error {
	var setting seoModel.SeoSetting
	err := sc.DB.Where("page = ?", c.Params("page")).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "SEO settings not found",
			})
		}
		logger.Error("Failed to fetch seo settings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   setting,
	})
}

// Upsert creates or replaces the metadata for one page.
func (sc *SeoController) Upsert(c *fiber.Ctx) error {
	var req seoTypes.SeoSettingRequest
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

	var setting seoModel.SeoSetting
	err := sc.DB.Where("page = ?", req.Page).First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to fetch seo settings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	setting.Page = req.Page
	setting.Title = req.Title
	setting.Description = req.Description
	setting.Keywords = nil
	if req.Keywords != "" {
		setting.Keywords = &req.Keywords
	}
	setting.OgImage = nil
	if req.OgImage != "" {
		setting.OgImage = &req.OgImage
	}

	if err := sc.DB.Save(&setting).Error; err != nil {
		logger.Error("Failed to save seo settings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "SEO settings saved",
		Data:    setting,
	})
}
