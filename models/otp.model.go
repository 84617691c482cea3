package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP stores one-time codes mailed out for password resets
type OTP struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Email     string    `json:"email" gorm:"index"`
	Code      string    `json:"-"`
	Purpose   string    `json:"purpose" gorm:"default:'PASSWORD_RESET'"`
	ExpiresAt time.Time `json:"expires_at"`
	IsUsed    bool      `json:"is_used" gorm:"default:false"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}
