package generation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"skillflow/database"
	"skillflow/llm"
	courseModels "skillflow/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) {
	t.Helper()
	database.ConnectTestDb()
}

func seedCourseAndModule(t *testing.T) (*courseModels.Course, *courseModels.Module) {
	t.Helper()
	db := database.Database.Db

	course := &courseModels.Course{
		Title:       "Go Fundamentals",
		Description: "A practical introduction to Go.",
		CreatorID:   1,
		CreatorName: "Tester",
	}
	require.NoError(t, db.Create(course).Error)

	module := &courseModels.Module{
		CourseID:    course.ID,
		Title:       "Slices and Maps",
		Description: "Working with Go's core collection types.",
		OrderIndex:  1,
		Type:        courseModels.ModuleTypeMixed,
	}
	require.NoError(t, db.Create(module).Error)

	return course, module
}

func validContentJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "Slices and maps are the workhorse collections in Go.",
		"text_content": "# Slices and Maps\n\nA slice is a view over an array...",
		"visual_items": [
			{
				"kind": "DIAGRAM",
				"title": "Slice internals",
				"description": "Pointer, length, capacity.",
				"diagram_source": "graph TD\n  A[Slice] --> B[Array]"
			}
		]
	}`)
}

func TestGetOrGenerateContent_PersistsGenerated(t *testing.T) {
	setupTest(t)
	course, module := seedCourseAndModule(t)

	mock := llm.NewMockProvider(llm.MockResponse{Content: validContentJSON()})
	gen := New(mock)

	content := gen.GetOrGenerateContent(context.Background(), course, module)
	require.NotNil(t, content)
	assert.Equal(t, module.ID, content.ModuleID)
	assert.False(t, content.IsPlaceholder)
	assert.Contains(t, content.TextContent, "Slices and Maps")
	require.Len(t, content.VisualItems, 1)
	assert.Equal(t, "Slice internals", content.VisualItems[0].Title)

	var stored courseModels.ModuleContent
	require.NoError(t, database.Database.Db.Where("module_id = ?", module.ID).First(&stored).Error)
	assert.Equal(t, content.Summary, stored.Summary)
}

func TestGetOrGenerateContent_CacheHitSkipsProvider(t *testing.T) {
	setupTest(t)
	course, module := seedCourseAndModule(t)

	mock := llm.NewMockProvider(llm.MockResponse{Content: validContentJSON()})
	gen := New(mock)

	first := gen.GetOrGenerateContent(context.Background(), course, module)
	second := gen.GetOrGenerateContent(context.Background(), course, module)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, mock.CallCount())
}

func TestGetOrGenerateContent_FallbackOnProviderError(t *testing.T) {
	setupTest(t)
	course, module := seedCourseAndModule(t)

	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUnavailable{Err: errors.New("down")}})
	gen := New(mock)

	content := gen.GetOrGenerateContent(context.Background(), course, module)
	require.NotNil(t, content)
	assert.True(t, content.IsPlaceholder)
	assert.Contains(t, content.Summary, module.Title)
	assert.NotEmpty(t, content.TextContent)

	// Placeholder is persisted too, so the module stays readable offline.
	var stored courseModels.ModuleContent
	require.NoError(t, database.Database.Db.Where("module_id = ?", module.ID).First(&stored).Error)
	assert.True(t, stored.IsPlaceholder)
}

func TestGetOrGenerateContent_FallbackOnEmptyFields(t *testing.T) {
	setupTest(t)
	course, module := seedCourseAndModule(t)

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary": "", "text_content": "", "visual_items": []}`),
	})
	gen := New(mock)

	content := gen.GetOrGenerateContent(context.Background(), course, module)
	require.NotNil(t, content)
	assert.True(t, content.IsPlaceholder)
}

func TestGetOrGenerateContent_NilProviderServesPlaceholder(t *testing.T) {
	setupTest(t)
	course, module := seedCourseAndModule(t)

	gen := New(nil)

	content := gen.GetOrGenerateContent(context.Background(), course, module)
	require.NotNil(t, content)
	assert.True(t, content.IsPlaceholder)
}
