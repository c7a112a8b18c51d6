package cargo

import (
	"time"
)

// Cargo represents a tracked shipment record.
type Cargo struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Assigned once at creation, never user-editable afterwards.
	TrackingNumber string `gorm:"type:varchar(50);not null;unique" json:"tracking_number"`

	CustomerName     string `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone    string `gorm:"type:varchar(50);not null" json:"customer_phone"`
	SalesRepName     string `gorm:"type:varchar(255);not null" json:"sales_rep_name"`
	CargoDescription string `gorm:"type:text;not null" json:"cargo_description"` // rich text / HTML

	Status CargoStatus `gorm:"type:varchar(50);not null;default:received" json:"status"`

	Origin      *string `gorm:"type:text" json:"origin,omitempty"`
	Destination *string `gorm:"type:text" json:"destination,omitempty"`
	Weight      *string `gorm:"type:text" json:"weight,omitempty"`
	Dimensions  *string `gorm:"type:text" json:"dimensions,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Cargo model
func (Cargo) TableName() string {
	return "cargo"
}
