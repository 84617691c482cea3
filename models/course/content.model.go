package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Visual item kinds
const (
	VisualKindDiagram = "DIAGRAM"
	VisualKindImage   = "IMAGE"
	VisualKindChart   = "CHART"
)

// VisualItem is one diagram/image descriptor inside generated module content
type VisualItem struct {
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	DiagramSource string `json:"diagram_source,omitempty"` // mermaid source for DIAGRAM kind
	URL           string `json:"url,omitempty"`
}

// ModuleContent holds the generated payload for a module. One row per module,
// generated once and reused on every subsequent read.
type ModuleContent struct {
	gorm.Model
	ModuleID      uint                            `json:"module_id" gorm:"uniqueIndex;not null"`
	CourseID      uint                            `json:"course_id" gorm:"index;not null"`
	Summary       string                          `json:"summary" gorm:"type:text"`
	TextContent   string                          `json:"text_content" gorm:"type:text"`
	VisualItems   datatypes.JSONSlice[VisualItem] `json:"visual_items"`
	IsPlaceholder bool                            `json:"is_placeholder" gorm:"default:false"`
	IsDeleted     bool                            `json:"-" gorm:"default:false"`
}

// UnderstoodMark records a "this helped me" click on one item of a module's
// content. The unique index makes repeat clicks no-ops, so learning-style
// points are counted at most once per item per user.
type UnderstoodMark struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex:idx_understood_once;not null"`
	ModuleID  uint   `json:"module_id" gorm:"uniqueIndex:idx_understood_once;not null"`
	ItemIndex int    `json:"item_index" gorm:"uniqueIndex:idx_understood_once;not null"`
	Style     string `json:"style"` // VISUAL or TEXTUAL
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
