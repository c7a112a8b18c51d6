package blog

import (
	"errors"

	"cargo-logistics/logger"
	"cargo-logistics/middleware"
	blogModel "cargo-logistics/models/blog"
	"cargo-logistics/types"
	blogTypes "cargo-logistics/types/blog"
	"cargo-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BlogController handles public and admin blog endpoints.
type BlogController struct {
	DB *gorm.DB
}

// NewBlogController creates a new blog controller
func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db}
}

// PublicIndex lists published posts, newest first, paged.
func (bc *BlogController) PublicIndex(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c, 10)
	return bc.list(c, page, limit, true)
}

// AdminIndex lists all posts regardless of publication state.
func (bc *BlogController) AdminIndex(c *fiber.Ctx) error {
	page, limit := utils.ParsePagination(c, 20)
	return bc.list(c, page, limit, false)
}

func (bc *BlogController) list(c *fiber.Ctx, page, limit int, publishedOnly bool) error {
	query := bc.DB.Model(&blogModel.BlogPost{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count blog posts", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	var posts []blogModel.BlogPost
	err := query.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&posts).Error
	if err != nil {
		logger.Error("Failed to fetch blog posts", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data: fiber.Map{
			"posts": posts,
			"total": total,
		},
	})
}

// ShowBySlug serves one published post on the public site.
func (bc *BlogController) ShowBySlug(c *fiber.Ctx) error {
	var post blogModel.BlogPost
	err := bc.DB.Where("slug = ?", c.Params("slug")).First(&post).Error
	if err != nil || !post.IsPublished {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Blog post not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   post,
	})
}

// Store creates a post authored by the calling admin.
func (bc *BlogController) Store(c *fiber.Ctx) error {
	var req blogTypes.BlogPostRequest
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

	post := blogModel.BlogPost{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Category:    defaultCategory(req.Category),
		IsPublished: req.IsPublished,
	}
	if req.Excerpt != "" {
		post.Excerpt = &req.Excerpt
	}
	if req.CoverImage != "" {
		post.CoverImage = &req.CoverImage
	}
	if authorID, ok := middleware.CurrentUserID(c); ok {
		post.AuthorID = &authorID
	}

	if err := bc.DB.Create(&post).Error; err != nil {
		logger.Error("Failed to create blog post", err)
		status := fiber.StatusInternalServerError
		msg := "Internal server error"
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			status = fiber.StatusConflict
			msg = "Slug already in use"
		}
		return c.Status(status).JSON(types.ApiResponse{Status: status, Message: msg})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Blog post created",
		Data:    post,
	})
}

// Update edits one post.
func (bc *BlogController) Update(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req blogTypes.BlogPostRequest
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

	var post blogModel.BlogPost
	if err := bc.DB.First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Blog post not found",
		})
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Content = req.Content
	post.Category = defaultCategory(req.Category)
	post.IsPublished = req.IsPublished
	post.Excerpt = nil
	if req.Excerpt != "" {
		post.Excerpt = &req.Excerpt
	}
	post.CoverImage = nil
	if req.CoverImage != "" {
		post.CoverImage = &req.CoverImage
	}

	if err := bc.DB.Save(&post).Error; err != nil {
		logger.Error("Failed to update blog post", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Blog post updated",
		Data:    post,
	})
}

// Destroy deletes one post.
func (bc *BlogController) Destroy(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := bc.DB.Delete(&blogModel.BlogPost{}, id).Error; err != nil {
		logger.Error("Failed to delete blog post", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func defaultCategory(category string) string {
	if category == "" {
		return "General"
	}
	return category
}
