package routes

import (
	authController "cargo-logistics/controllers/auth"
	blogController "cargo-logistics/controllers/blog"
	branchController "cargo-logistics/controllers/branch"
	cargoController "cargo-logistics/controllers/cargo"
	contactController "cargo-logistics/controllers/contact"
	dashboardController "cargo-logistics/controllers/dashboard"
	faqController "cargo-logistics/controllers/faq"
	seoController "cargo-logistics/controllers/seo"
	testimonialController "cargo-logistics/controllers/testimonial"
	trackController "cargo-logistics/controllers/track"
	"cargo-logistics/logger"
	"cargo-logistics/middleware"
	cargoService "cargo-logistics/services/cargo"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	service := cargoService.NewService(db)

	auth := authController.NewAuthController(db)
	cargo := cargoController.NewCargoController(service, asyncLogger)
	track := trackController.NewTrackController(service)
	blog := blogController.NewBlogController(db)
	branch := branchController.NewBranchController(db)
	testimonial := testimonialController.NewTestimonialController(db)
	seo := seoController.NewSeoController(db)
	faq := faqController.NewFaqController(db)
	contact := contactController.NewContactController(db)
	dashboard := dashboardController.NewDashboardController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")

	api.Post("/login", auth.Login)
	api.Post("/register", auth.Register)
	api.Post("/logout", auth.Logout)

	api.Get("/cargo/track/:trackingNumber", track.Track)

	api.Post("/contact", contact.Store)
	api.Get("/testimonials", testimonial.PublicIndex)
	api.Post("/testimonials", testimonial.Store)
	api.Get("/branches", branch.PublicIndex)
	api.Get("/blog", blog.PublicIndex)
	api.Get("/blog/:slug", blog.ShowBySlug)
	api.Get("/seo/:page", seo.Show)
	api.Get("/faqs", faq.PublicIndex)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	admin := api.Group("/admin").Use(middleware.RequireAdmin())

	api.Get("/user", middleware.RequireAdmin(), auth.Me)

	admin.Get("/dashboard/stats", dashboard.Stats)

	// Cargo management
	admin.Post("/cargo", cargo.Store)
	admin.Get("/cargo", cargo.Index)
	admin.Get("/cargo/:id", cargo.Show)
	admin.Put("/cargo/:id/status", cargo.UpdateStatus)
	admin.Put("/cargo/:id", cargo.Update)
	admin.Delete("/cargo/:id", cargo.Destroy)
	admin.Get("/cargo/:id/status-history", cargo.ListStatusHistory)
	admin.Post("/cargo/:id/status-history", cargo.AddStatusHistory)
	admin.Get("/cargo/:id/flight-segments", cargo.ListFlightSegments)
	admin.Post("/cargo/:id/flight-segments", cargo.AddFlightSegment)
	admin.Put("/cargo/:cargoId/flight-segments/:segmentId", cargo.UpdateFlightSegment)

	// Inbox and moderation
	admin.Get("/contact-submissions", contact.Index)
	admin.Put("/contact-submissions/:id/read", contact.MarkRead)
	admin.Get("/testimonials", testimonial.AdminIndex)
	admin.Put("/testimonials/:id/approve", testimonial.Approve)
	admin.Delete("/testimonials/:id", testimonial.Reject)

	// Site content
	admin.Post("/branches", branch.Store)
	admin.Get("/branches", branch.AdminIndex)
	admin.Put("/branches/:id", branch.Update)
	admin.Delete("/branches/:id", branch.Destroy)

	admin.Post("/blog", blog.Store)
	admin.Get("/blog", blog.AdminIndex)
	admin.Put("/blog/:id", blog.Update)
	admin.Delete("/blog/:id", blog.Destroy)

	admin.Put("/seo", seo.Upsert)

	admin.Get("/faqs", faq.AdminIndex)
	admin.Post("/faqs", faq.Store)
	admin.Put("/faqs/:id", faq.Update)
	admin.Delete("/faqs/:id", faq.Destroy)
}
