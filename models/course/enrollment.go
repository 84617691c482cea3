package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment tracks a user's enrollment in a course with progress.
// The composite unique index rejects duplicate enrollments at the database
// level; the handler's existence check only exists to return a friendly 409.
type Enrollment struct {
	gorm.Model
	UserID             uint                                  `json:"user_id" gorm:"uniqueIndex:idx_enroll_once;not null"`
	CourseID           uint                                  `json:"course_id" gorm:"uniqueIndex:idx_enroll_once;not null"`
	Status             string                                `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress           float64                               `json:"progress" gorm:"default:0"`        // Completion percentage (0-100)
	CompletedModuleIDs datatypes.JSONSlice[uint]             `json:"completed_module_ids"`
	QuizScores         datatypes.JSONType[map[uint]int]      `json:"quiz_scores"` // quiz id -> best score
	LastAccessedAt     *time.Time                            `json:"last_accessed_at"`
	CompletedAt        *time.Time                            `json:"completed_at"`
	IsDeleted          bool                                  `json:"-" gorm:"default:false"`
}

// Certificate is issued once a certificate request for a completed course is approved
type Certificate struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	CourseID      uint      `json:"course_id" gorm:"index;not null"`
	CertificateID string    `json:"certificate_id" gorm:"uniqueIndex"` // public uuid
	IssuedAt      time.Time `json:"issued_at"`
	IsDeleted     bool      `json:"-" gorm:"default:false"`
}

// CertificateRequest tracks a pending certificate issue request
type CertificateRequest struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	EnrollmentID uint      `json:"enrollment_id"`
	Status       string    `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	RequestedAt  time.Time `json:"requested_at"`
	IsDeleted    bool      `json:"-" gorm:"default:false"`
}
