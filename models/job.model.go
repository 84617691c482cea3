package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JobListing is an open position surfaced on the job board
type JobListing struct {
	gorm.Model
	Title          string                      `json:"title"`
	Company        string                      `json:"company"`
	Location       string                      `json:"location"`
	Description    string                      `json:"description" gorm:"type:text"`
	ApplyURL       string                      `json:"apply_url"`
	SkillsRequired datatypes.JSONSlice[string] `json:"skills_required"`
	IsActive       bool                        `json:"is_active" gorm:"default:true"`
	IsDeleted      bool                        `json:"-" gorm:"default:false"`
}
