package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string                      `json:"profile_image" gorm:"default:''"`
	Name         string                      `json:"name" gorm:"default:''"`
	Email        string                      `json:"email" gorm:"unique;not null"`
	Password     string                      `json:"-" gorm:"not null"`
	Role         string                      `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Bio          string                      `json:"bio" gorm:"type:text"`

	// Learning-style counters. Incremented server-side only, never decremented.
	VisualPoints  int `json:"visual_points" gorm:"default:0"`
	TextualPoints int `json:"textual_points" gorm:"default:0"`

	IsBanned        bool       `json:"is_banned" gorm:"default:false"`
	IsEmailVerified bool       `json:"is_email_verified" gorm:"default:false"`
	LastLogin       *time.Time `json:"last_login"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "ADMIN"
}
