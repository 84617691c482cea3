package database

import (
	"testing"

	courseModels "skillflow/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollment_DuplicateRejected(t *testing.T) {
	db := ConnectTestDb()

	first := courseModels.Enrollment{UserID: 10, CourseID: 20}
	require.NoError(t, db.Create(&first).Error)

	dup := courseModels.Enrollment{UserID: 10, CourseID: 20}
	assert.Error(t, db.Create(&dup).Error)

	// Same user, different course is fine.
	other := courseModels.Enrollment{UserID: 10, CourseID: 21}
	assert.NoError(t, db.Create(&other).Error)
}

func TestUnderstoodMark_RepeatClickRejected(t *testing.T) {
	db := ConnectTestDb()

	mark := courseModels.UnderstoodMark{UserID: 1, ModuleID: 2, ItemIndex: 0, Style: "VISUAL"}
	require.NoError(t, db.Create(&mark).Error)

	repeat := courseModels.UnderstoodMark{UserID: 1, ModuleID: 2, ItemIndex: 0, Style: "VISUAL"}
	assert.Error(t, db.Create(&repeat).Error)

	// A different item on the same module is a new mark.
	next := courseModels.UnderstoodMark{UserID: 1, ModuleID: 2, ItemIndex: 1, Style: "TEXTUAL"}
	assert.NoError(t, db.Create(&next).Error)
}

func TestModuleContent_OneRowPerModule(t *testing.T) {
	db := ConnectTestDb()

	content := courseModels.ModuleContent{ModuleID: 5, CourseID: 1, Summary: "s", TextContent: "t"}
	require.NoError(t, db.Create(&content).Error)

	dup := courseModels.ModuleContent{ModuleID: 5, CourseID: 1, Summary: "other", TextContent: "other"}
	assert.Error(t, db.Create(&dup).Error)
}

func TestQuiz_OnePerScope(t *testing.T) {
	db := ConnectTestDb()

	moduleQuiz := courseModels.Quiz{CourseID: 7, ModuleID: 3}
	require.NoError(t, db.Create(&moduleQuiz).Error)

	dup := courseModels.Quiz{CourseID: 7, ModuleID: 3}
	assert.Error(t, db.Create(&dup).Error)

	// The course-level quiz shares course id but uses module id zero.
	courseQuiz := courseModels.Quiz{CourseID: 7, ModuleID: 0}
	assert.NoError(t, db.Create(&courseQuiz).Error)
}
