package auth

import (
	"errors"

	"cargo-logistics/logger"
	"cargo-logistics/middleware"
	userModel "cargo-logistics/models/user"
	"cargo-logistics/types"
	authTypes "cargo-logistics/types/auth"
	"cargo-logistics/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthController handles back-office login and account creation.
type AuthController struct {
	DB *gorm.DB
}

// NewAuthController creates a new auth controller
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Register creates a new admin account.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
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

	var existing userModel.User
	err := ac.DB.Where("username = ?", req.Username).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Username already exists",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Registration failed",
		})
	}

	user := userModel.User{
		Username: req.Username,
		Password: hashed,
		Role:     "admin",
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Registration failed",
		})
	}

	token, err := middleware.IssueToken(user.ID, user.Username, user.Role)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Registration failed",
		})
	}

	logger.Success("Registered admin user " + user.Username)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Registration successful",
		Token:   token,
		Data:    user,
	})
}

// Login verifies credentials and returns a bearer token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
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

	var user userModel.User
	err := ac.DB.Where("username = ?", req.Username).First(&user).Error
	if err != nil || !utils.CheckPassword(user.Password, req.Password) {
		// Same answer for unknown user and wrong password.
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid username or password",
		})
	}

	token, err := middleware.IssueToken(user.ID, user.Username, user.Role)
	if err != nil {
		logger.Error("Failed to issue token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Login failed",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data:    user,
	})
}

// Logout exists for client symmetry; bearer tokens are stateless so there is
// nothing to revoke server side.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the authenticated user's account.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	var user userModel.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   user,
	})
}
