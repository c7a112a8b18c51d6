package branch

import (
	"time"
)

// Branch is a company office shown on the public branches page.
type Branch struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Address  string  `gorm:"type:text;not null" json:"address"`
	City     string  `gorm:"type:varchar(255);not null" json:"city"`
	Country  string  `gorm:"type:varchar(255);not null" json:"country"`
	Phone    string  `gorm:"type:varchar(50);not null" json:"phone"`
	Email    string  `gorm:"type:varchar(255);not null" json:"email"`
	Incharge string  `gorm:"type:varchar(255);not null;default:Unknown" json:"incharge"`
	Location *string `gorm:"type:text" json:"location,omitempty"` // map link

	IsMainOffice bool `gorm:"default:false" json:"is_main_office"`
	IsActive     bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Branch model
func (Branch) TableName() string {
	return "branches"
}
