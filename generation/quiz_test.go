package generation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"skillflow/llm"
	courseModels "skillflow/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`[
		{"text": "What declares a slice?", "options": ["[]int", "int[]", "slice<int>", "array"], "correct": "[]int", "type": "TEXTUAL"},
		{"text": "Which diagram shows slice growth?", "options": ["A", "B"], "correct": "B", "type": "VISUAL"}
	]`)
}

func TestGetOrGenerateQuiz_ModuleQuiz(t *testing.T) {
	setupTest(t)
	course, module := seedCourseAndModule(t)

	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock)

	quiz := gen.GetOrGenerateQuiz(context.Background(), course, module)
	require.NotNil(t, quiz)
	assert.Equal(t, course.ID, quiz.CourseID)
	assert.Equal(t, module.ID, quiz.ModuleID)
	assert.False(t, quiz.IsPlaceholder)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, 1, quiz.Questions[0].ID)
	assert.Equal(t, 2, quiz.Questions[1].ID)
}

func TestGetOrGenerateQuiz_CourseQuizHasZeroModuleID(t *testing.T) {
	setupTest(t)
	course, _ := seedCourseAndModule(t)

	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock)

	quiz := gen.GetOrGenerateQuiz(context.Background(), course, nil)
	require.NotNil(t, quiz)
	assert.Equal(t, course.ID, quiz.CourseID)
	assert.Zero(t, quiz.ModuleID)
}

func TestGetOrGenerateQuiz_CacheHitSkipsProvider(t *testing.T) {
	setupTest(t)
	course, module := seedCourseAndModule(t)

	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock)

	first := gen.GetOrGenerateQuiz(context.Background(), course, module)
	second := gen.GetOrGenerateQuiz(context.Background(), course, module)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, mock.CallCount())
}

func TestGetOrGenerateQuiz_FallbackOnError(t *testing.T) {
	setupTest(t)
	course, module := seedCourseAndModule(t)

	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	gen := New(mock)

	quiz := gen.GetOrGenerateQuiz(context.Background(), course, module)
	require.NotNil(t, quiz)
	assert.True(t, quiz.IsPlaceholder)
	assert.Len(t, quiz.Questions, ModuleQuizQuestions)

	// Placeholder answers are still scorable.
	for _, q := range quiz.Questions {
		assert.Contains(t, []string(q.Options), q.Correct)
	}
}

func TestGetOrGenerateQuiz_CourseFallbackHasTenQuestions(t *testing.T) {
	setupTest(t)
	course, _ := seedCourseAndModule(t)

	gen := New(nil)

	quiz := gen.GetOrGenerateQuiz(context.Background(), course, nil)
	require.NotNil(t, quiz)
	assert.True(t, quiz.IsPlaceholder)
	assert.Len(t, quiz.Questions, CourseQuizQuestions)
}

func TestSanitizeQuestions(t *testing.T) {
	out := []questionOutput{
		{Text: "Good", Options: []string{"A", "B"}, Correct: "A", Type: "TEXTUAL"},
		{Text: "Correct not in options", Options: []string{"A", "B"}, Correct: "C"},
		{Text: "", Options: []string{"A", "B"}, Correct: "A"},
		{Text: "Single option", Options: []string{"A"}, Correct: "A"},
		{Text: "Unknown type", Options: []string{"X", "Y"}, Correct: "Y", Type: "AUDIO"},
	}

	questions := sanitizeQuestions(out)
	require.Len(t, questions, 2)
	assert.Equal(t, "Good", questions[0].Text)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, "Unknown type", questions[1].Text)
	assert.Equal(t, 2, questions[1].ID)
	assert.Equal(t, courseModels.ModuleTypeTextual, questions[1].Type)
}
