package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is a single multiple-choice question inside a quiz
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
	Type     string   `json:"type"` // VISUAL, TEXTUAL
	ImageURL string   `json:"image_url,omitempty"`
}

// Quiz holds the generated questions for a module, or for a whole course when
// ModuleID is zero. One quiz per (course, module) pair.
type Quiz struct {
	gorm.Model
	CourseID      uint                          `json:"course_id" gorm:"uniqueIndex:idx_quiz_scope;not null"`
	ModuleID      uint                          `json:"module_id" gorm:"uniqueIndex:idx_quiz_scope"` // 0 = course-level quiz
	Questions     datatypes.JSONSlice[Question] `json:"questions"`
	IsPlaceholder bool                          `json:"is_placeholder" gorm:"default:false"`
	IsDeleted     bool                          `json:"-" gorm:"default:false"`
}

// QuizAttempt records one submission of a quiz by a user
type QuizAttempt struct {
	gorm.Model
	UserID        uint                              `json:"user_id" gorm:"index;not null"`
	QuizID        uint                              `json:"quiz_id" gorm:"index;not null"`
	CourseID      uint                              `json:"course_id" gorm:"index;not null"`
	ModuleID      uint                              `json:"module_id"`
	Answers       datatypes.JSONType[map[int]string] `json:"answers"`
	Score         int                               `json:"score"`
	MaxScore      int                               `json:"max_score"`
	Passed        bool                              `json:"passed" gorm:"default:false"`
	AttemptNumber int                               `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool                              `json:"-" gorm:"default:false"`
}
