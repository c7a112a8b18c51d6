package branch

import (
	"cargo-logistics/logger"
	branchModel "cargo-logistics/models/branch"
	"cargo-logistics/types"
	branchTypes "cargo-logistics/types/branch"
	"cargo-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BranchController handles public and admin branch endpoints.
type BranchController struct {
	DB *gorm.DB
}

// NewBranchController creates a new branch controller
func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db}
}

// PublicIndex lists active branches for the public site.
func (bc *BranchController) PublicIndex(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c, 50)
	return bc.list(c, page, limit, true)
}

// AdminIndex lists every branch, active or not.
func (bc *BranchController) AdminIndex(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c, 50)
	return bc.list(c, page, limit, false)
}

func (bc *BranchController) list(c *fiber.Ctx, page, limit int, activeOnly bool) error {
	query := bc.DB.Model(&branchModel.Branch{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count branches", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	var branches []branchModel.Branch
	err := query.Order("name ASC").Limit(limit).Offset((page - 1) * limit).Find(&branches).Error
	if err != nil {
		logger.Error("Failed to fetch branches", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data: fiber.Map{
			"branches": branches,
			"total":    total,
		},
	})
}

// Store creates a branch.
func (bc *BranchController) Store(c *fiber.Ctx) error {
	req, ok := parseBranchRequest(c)
	if !ok {
		return nil
	}

	branch := branchFromRequest(req)
	if err := bc.DB.Create(&branch).Error; err != nil {
		logger.Error("Failed to create branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Branch created",
		Data:    branch,
	})
}

// Update edits one branch.
func (bc *BranchController) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	req, ok := parseBranchRequest(c)
	if !ok {
		return nil
	}

	var existing branchModel.Branch
	if err := bc.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Branch not found",
		})
	}

	branch := branchFromRequest(req)
	branch.ID = existing.ID
	branch.CreatedAt = existing.CreatedAt
	if err := bc.DB.Save(&branch).Error; err != nil {
		logger.Error("Failed to update branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Branch updated",
		Data:    branch,
	})
}

// Destroy deletes one branch.
func (bc *BranchController) Destroy(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := bc.DB.Delete(&branchModel.Branch{}, id).Error; err != nil {
		logger.Error("Failed to delete branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseBranchRequest(c *fiber.Ctx) (branchTypes.BranchRequest, bool) {
	var req branchTypes.BranchRequest
	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
		return req, false
	}
	if err := req.Validate(); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
		return req, false
	}
	return req, true
}

func branchFromRequest(req branchTypes.BranchRequest) branchModel.Branch {
	branch := branchModel.Branch{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		Phone:        req.Phone,
		Email:        req.Email,
		Incharge:     req.Incharge,
		IsMainOffice: req.IsMainOffice,
		IsActive:     req.IsActive,
	}
	if branch.Incharge == "" {
		branch.Incharge = "Unknown"
	}
	if req.Location != "" {
		branch.Location = &req.Location
	}
	return branch
}
