package seeders

import (
	"log"

	seoModel "cargo-logistics/models/seo"

	"gorm.io/gorm"
)

// SeedSeoSettings inserts default metadata for the marketing pages so the
// public site renders sensible titles before an admin touches anything.
// Existing rows are never overwritten.
func SeedSeoSettings(db *gorm.DB) {
	defaults := []seoModel.SeoSetting{
		{Page: "home", Title: "Air Cargo & Logistics Services", Description: "Fast, reliable air freight with door-to-door tracking."},
		{Page: "services", Title: "Our Services", Description: "Air freight, customs clearance and warehousing services."},
		{Page: "tracking", Title: "Track Your Shipment", Description: "Enter your tracking number to follow your cargo in real time."},
		{Page: "blog", Title: "Logistics News & Insights", Description: "Industry news and shipping guides from our team."},
		{Page: "branches", Title: "Our Branches", Description: "Find the office nearest to you."},
		{Page: "faq", Title: "Frequently Asked Questions", Description: "Answers to common shipping and tracking questions."},
		{Page: "contact", Title: "Contact Us", Description: "Get a quote or ask about a shipment."},
	}

	for _, setting := range defaults {
		var count int64
		if err := db.Model(&seoModel.SeoSetting{}).Where("page = ?", setting.Page).Count(&count).Error; err != nil {
			log.Printf("❌ Failed to check seo settings for %q: %v", setting.Page, err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Printf("❌ Failed to seed seo settings for %q: %v", setting.Page, err)
		}
	}
}
