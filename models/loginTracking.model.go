package models

import "gorm.io/gorm"

// LoginTracking records every successful login for the account history screen
type LoginTracking struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
