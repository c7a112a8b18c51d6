package dashboard

import (
	"time"

	"cargo-logistics/logger"
	cargoModel "cargo-logistics/models/cargo"
	contactModel "cargo-logistics/models/contact"
	testimonialModel "cargo-logistics/models/testimonial"
	"cargo-logistics/types"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// DashboardController answers the admin landing-page counters.
type DashboardController struct {
	DB *gorm.DB
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Stats aggregates shipment and inbox counters for the admin dashboard.
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	counts := map[string]int64{}

	var totalCargo int64
	if err := dc.DB.Model(&cargoModel.Cargo{}).Count(&totalCargo).Error; err != nil {
		return dc.fail(c, err)
	}

	for _, status := range cargoModel.GetAllCargoStatuses() {
		var n int64
		if err := dc.DB.Model(&cargoModel.Cargo{}).Where("status = ?", status).Count(&n).Error; err != nil {
			return dc.fail(c, err)
		}
		counts[status.String()] = n
	}

	today := now.With(time.Now()).BeginningOfDay()
	week := now.With(time.Now()).BeginningOfWeek()

	var createdToday, createdThisWeek int64
	if err := dc.DB.Model(&cargoModel.Cargo{}).Where("created_at >= ?", today).Count(&createdToday).Error; err != nil {
		return dc.fail(c, err)
	}
	if err := dc.DB.Model(&cargoModel.Cargo{}).Where("created_at >= ?", week).Count(&createdThisWeek).Error; err != nil {
		return dc.fail(c, err)
	}

	var unreadSubmissions int64
	if err := dc.DB.Model(&contactModel.ContactSubmission{}).Where("is_read = ?", false).Count(&unreadSubmissions).Error; err != nil {
		return dc.fail(c, err)
	}

	var pendingTestimonials int64
	if err := dc.DB.Model(&testimonialModel.Testimonial{}).Where("is_approved = ?", false).Count(&pendingTestimonials).Error; err != nil {
		return dc.fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data: fiber.Map{
			"total_cargo":          totalCargo,
			"cargo_by_status":      counts,
			"created_today":        createdToday,
			"created_this_week":    createdThisWeek,
			"unread_submissions":   unreadSubmissions,
			"pending_testimonials": pendingTestimonials,
		},
	})
}

func (dc *DashboardController) fail(c *fiber.Ctx, err error) error {
	logger.Error("Failed to build dashboard stats", err)
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Internal server error",
	})
}
