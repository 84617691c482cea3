package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"skillflow/llm"
	courseModels "skillflow/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outlineJSON(count int) json.RawMessage {
	var sb strings.Builder
	sb.WriteString(`{"modules": [`)
	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"title": "Module %d", "description": "Covers part %d.", "type": "MIXED"}`, i+1, i+1)
	}
	sb.WriteString(`]}`)
	return json.RawMessage(sb.String())
}

func testCourse() *courseModels.Course {
	return &courseModels.Course{
		Title:       "Go Fundamentals",
		Description: "A practical introduction to Go.",
	}
}

func TestGenerateModules_FromProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: outlineJSON(4)})
	gen := New(mock)

	modules := gen.GenerateModules(context.Background(), testCourse())
	require.Len(t, modules, 4)
	for i, m := range modules {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Description)
		assert.Equal(t, i+1, m.OrderIndex)
	}
}

func TestGenerateModules_ClampedToMax(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: outlineJSON(25)})
	gen := New(mock)

	modules := gen.GenerateModules(context.Background(), testCourse())
	assert.Len(t, modules, MaxModulesPerCourse)
}

func TestGenerateModules_DropsEmptyEntries(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"modules": [
			{"title": "Kept", "description": "Has a description.", "type": "TEXTUAL"},
			{"title": "", "description": "No title."},
			{"title": "No description", "description": ""}
		]}`),
	})
	gen := New(mock)

	modules := gen.GenerateModules(context.Background(), testCourse())
	require.Len(t, modules, 1)
	assert.Equal(t, "Kept", modules[0].Title)
}

func TestGenerateModules_UnknownTypeBecomesMixed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"modules": [
			{"title": "A", "description": "d", "type": "PODCAST"}
		]}`),
	})
	gen := New(mock)

	modules := gen.GenerateModules(context.Background(), testCourse())
	require.Len(t, modules, 1)
	assert.Equal(t, courseModels.ModuleTypeMixed, modules[0].Type)
}

func TestGenerateModules_FallbackOutline(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUnavailable{Err: errors.New("down")}})
	gen := New(mock)

	course := testCourse()
	modules := gen.GenerateModules(context.Background(), course)
	require.Len(t, modules, 5)
	for _, m := range modules {
		assert.Contains(t, m.Title, course.Title)
		assert.NotEmpty(t, m.Description)
	}
}

func TestGenerateModules_AllEntriesInvalidFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"modules": [{"title": "", "description": ""}]}`),
	})
	gen := New(mock)

	modules := gen.GenerateModules(context.Background(), testCourse())
	assert.Len(t, modules, 5)
}
