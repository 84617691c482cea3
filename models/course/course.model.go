package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ModuleOutline is the denormalized module snapshot embedded on a course row.
// The modules table is canonical; this list is a read cache rebuilt by
// MaterializeModuleCache whenever the normalized rows change.
type ModuleOutline struct {
	ModuleID    uint   `json:"module_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
	Type        string `json:"type"`
}

// Course represents a learning course
type Course struct {
	gorm.Model
	Title         string                      `json:"title"`
	Description   string                      `json:"description" gorm:"type:text"`
	CreatorID     uint                        `json:"creator_id" gorm:"index;not null"`
	CreatorName   string                      `json:"creator_name"`
	SkillsOffered datatypes.JSONSlice[string] `json:"skills_offered"`
	CoverImageURL string                      `json:"cover_image_url"`
	SystemPrompt  string                      `json:"system_prompt" gorm:"type:text"`
	ViewCount     int64                       `json:"view_count" gorm:"default:0"`
	Rating        uint                        `json:"rating" gorm:"default:0"`
	Status        string                      `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, INACTIVE, TAKEN_DOWN
	IsPublished   bool                        `json:"is_published" gorm:"default:true"`

	// Read cache of the modules table, see ModuleOutline.
	ModuleCache datatypes.JSONSlice[ModuleOutline] `json:"module_cache"`

	IsDeleted bool `json:"-" gorm:"default:false"`
}
