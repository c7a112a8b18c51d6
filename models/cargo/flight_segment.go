package cargo

import (
	"time"
)

// FlightSegment represents one leg of a (possibly multi-leg) air shipment,
// owned by exactly one Cargo.
type FlightSegment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for cargo relationship
	CargoID uint  `gorm:"not null;index" json:"cargo_id"`
	Cargo   Cargo `gorm:"foreignKey:CargoID" json:"-"`

	FlightNumber     string  `gorm:"type:varchar(255);not null" json:"flight_number"`
	Airline          *string `gorm:"type:varchar(255)" json:"airline,omitempty"`
	DepartureAirport string  `gorm:"type:varchar(255);not null" json:"departure_airport"`
	ArrivalAirport   string  `gorm:"type:varchar(255);not null" json:"arrival_airport"`

	DepartureTime time.Time `gorm:"not null" json:"departure_time"`
	ArrivalTime   time.Time `gorm:"not null" json:"arrival_time"`

	Pieces *string `gorm:"type:varchar(50)" json:"pieces,omitempty"` // e.g. 4/4
	Weight *string `gorm:"type:varchar(50)" json:"weight,omitempty"`
	Volume *string `gorm:"type:varchar(50)" json:"volume,omitempty"`

	Status string `gorm:"type:varchar(50);not null" json:"status"` // e.g. Planned, Booked, In Transit

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the FlightSegment model
func (FlightSegment) TableName() string {
	return "cargo_flight_segments"
}
