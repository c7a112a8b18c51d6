package database

import (
	"fmt"
	"os"

	"cargo-logistics/logger"
	blogModel "cargo-logistics/models/blog"
	branchModel "cargo-logistics/models/branch"
	cargoModel "cargo-logistics/models/cargo"
	contactModel "cargo-logistics/models/contact"
	faqModel "cargo-logistics/models/faq"
	logModel "cargo-logistics/models/log"
	seoModel "cargo-logistics/models/seo"
	testimonialModel "cargo-logistics/models/testimonial"
	userModel "cargo-logistics/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := AutoMigrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// AutoMigrate runs auto migration for all models, parents before children so
// foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	// Stage 1: models without foreign keys
	stage1Models := []interface{}{
		&userModel.User{},
		&cargoModel.Cargo{},
		&branchModel.Branch{},
		&testimonialModel.Testimonial{},
		&seoModel.SeoSetting{},
		&faqModel.Faq{},
		&contactModel.ContactSubmission{},
		&logModel.Log{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing Stage 1
	stage2Models := []interface{}{
		&cargoModel.FlightSegment{},
		&cargoModel.StatusHistory{},
		&blogModel.BlogPost{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	indexes := []struct {
		name string
		sql  string
	}{
		{"idx_cargo_tracking_number", "CREATE INDEX IF NOT EXISTS idx_cargo_tracking_number ON cargo(tracking_number)"},
		{"idx_cargo_status", "CREATE INDEX IF NOT EXISTS idx_cargo_status ON cargo(status)"},
		{"idx_cargo_created_at", "CREATE INDEX IF NOT EXISTS idx_cargo_created_at ON cargo(created_at)"},
		{"idx_flight_segments_cargo_id", "CREATE INDEX IF NOT EXISTS idx_flight_segments_cargo_id ON cargo_flight_segments(cargo_id)"},
		{"idx_status_history_cargo_id", "CREATE INDEX IF NOT EXISTS idx_status_history_cargo_id ON cargo_status_history(cargo_id)"},
		{"idx_status_history_timestamp", "CREATE INDEX IF NOT EXISTS idx_status_history_timestamp ON cargo_status_history(timestamp)"},
		{"idx_blog_posts_slug", "CREATE INDEX IF NOT EXISTS idx_blog_posts_slug ON blog_posts(slug)"},
		{"idx_blog_posts_is_published", "CREATE INDEX IF NOT EXISTS idx_blog_posts_is_published ON blog_posts(is_published)"},
		{"idx_branches_is_active", "CREATE INDEX IF NOT EXISTS idx_branches_is_active ON branches(is_active)"},
		{"idx_logs_created_at", "CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)"},
	}

	for _, idx := range indexes {
		if err := DB.Exec(idx.sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
