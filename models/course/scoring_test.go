package course

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeQuestions(n int) []Question {
	questions := make([]Question, n)
	for i := range questions {
		questions[i] = Question{
			ID:      i + 1,
			Text:    fmt.Sprintf("Question %d", i+1),
			Options: []string{"A", "B", "C", "D"},
			Correct: "A",
			Type:    ModuleTypeTextual,
		}
	}
	return questions
}

func answersWithCorrect(n, correct int) map[int]string {
	answers := make(map[int]string, n)
	for i := 1; i <= n; i++ {
		if i <= correct {
			answers[i] = "A"
		} else {
			answers[i] = "B"
		}
	}
	return answers
}

func TestEvaluateQuiz_PassBoundary(t *testing.T) {
	questions := makeQuestions(10)

	score, passed := EvaluateQuiz(questions, answersWithCorrect(10, 8))
	assert.Equal(t, 8, score)
	assert.True(t, passed)

	score, passed = EvaluateQuiz(questions, answersWithCorrect(10, 7))
	assert.Equal(t, 7, score)
	assert.False(t, passed)
}

func TestEvaluateQuiz_SmallQuiz(t *testing.T) {
	questions := makeQuestions(5)

	// 4/5 = 0.8 exactly, which passes.
	_, passed := EvaluateQuiz(questions, answersWithCorrect(5, 4))
	assert.True(t, passed)

	_, passed = EvaluateQuiz(questions, answersWithCorrect(5, 3))
	assert.False(t, passed)
}

func TestEvaluateQuiz_EmptyQuizNeverPasses(t *testing.T) {
	score, passed := EvaluateQuiz(nil, map[int]string{})
	assert.Zero(t, score)
	assert.False(t, passed)
}

func TestEvaluateQuiz_MissingAnswersCountWrong(t *testing.T) {
	questions := makeQuestions(4)

	score, passed := EvaluateQuiz(questions, map[int]string{1: "A"})
	assert.Equal(t, 1, score)
	assert.False(t, passed)
}

func TestStripAnswers(t *testing.T) {
	questions := makeQuestions(3)

	served := StripAnswers(questions)
	for _, q := range served {
		assert.Empty(t, q.Correct)
		assert.Len(t, q.Options, 4)
	}

	// Originals keep their answers.
	for _, q := range questions {
		assert.Equal(t, "A", q.Correct)
	}
}
