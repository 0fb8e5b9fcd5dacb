package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User model. There is no password: login is OTP-only.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string    `gorm:"unique;not null" json:"email"`
	MobileNumber  string    `gorm:"size:15;not null" json:"mobile_number"`
	EmailVerified bool      `gorm:"default:false" json:"email_verified"`
	Role          string    `gorm:"type:varchar(50);default:'user'" json:"role"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Migrate function for auto migration
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Order{}, &OrderItem{})
}
