package middleware

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cargo-logistics/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in the admin bearer token.
const (
	ClaimUserID   = "user_id"
	ClaimUsername = "username"
	ClaimRole     = "role"
)

// IssueToken signs an HS256 bearer token for a back-office user.
func IssueToken(userID uint, username, role string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}

	claims := jwt.MapClaims{
		ClaimUserID:   float64(userID),
		ClaimUsername: username,
		ClaimRole:     role,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// RequireAdmin is the capability check on every back-office endpoint: a valid
// bearer token whose claims land in c.Locals("user").
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Authentication required",
			})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid token claims",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// CurrentUserID extracts the authenticated user's id from the request context.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims[ClaimUserID].(float64)
	if !ok {
		return 0, false
	}
	return uint(id), true
}
