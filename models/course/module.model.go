package course

import "gorm.io/gorm"

// Module type constants
const (
	ModuleTypeVisual  = "VISUAL"
	ModuleTypeTextual = "TEXTUAL"
	ModuleTypeMixed   = "MIXED"
)

// Module represents a section/module within a course
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Module order in course
	Type        string `json:"type" gorm:"default:'MIXED'"`  // VISUAL, TEXTUAL, MIXED
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
