package seeders

import (
	"log"
	"os"

	userModel "cargo-logistics/models/user"
	"cargo-logistics/utils"

	"gorm.io/gorm"
)

// SeedAdminUser guarantees one back-office account exists so a fresh install
// is reachable. Credentials come from ADMIN_USERNAME/ADMIN_PASSWORD; nothing
// happens when the account is already present or the env is unset.
func SeedAdminUser(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Printf("🔍 ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&userModel.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := userModel.User{
		Username: username,
		Password: hashed,
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin user: %v", err)
		return
	}
	log.Printf("✅ Seeded admin user %q", username)
}
