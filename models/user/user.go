package user

import (
	"time"
)

// User is a back-office account. The public site never sees these; every
// admin endpoint resolves the caller to one of them.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(255);not null;unique" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Role     string `gorm:"type:varchar(50);not null;default:admin" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the User model
func (User) TableName() string {
	return "users"
}
