package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"skillflow/database"
	courseModels "skillflow/models/course"
)

type questionOutput struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct string   `json:"correct"`
	Type    string   `json:"type"`
}

// GetOrGenerateQuiz returns the quiz for a module, or for the whole course
// when module is nil. Like content, the first call generates and persists and
// every later call is a plain read. The fallback quiz is always available.
func (g *Generator) GetOrGenerateQuiz(ctx context.Context, course *courseModels.Course, module *courseModels.Module) *courseModels.Quiz {
	db := database.Database.Db

	var moduleID uint
	if module != nil {
		moduleID = module.ID
	}

	var existing courseModels.Quiz
	if err := db.Where("course_id = ? AND module_id = ? AND is_deleted = ?", course.ID, moduleID, false).First(&existing).Error; err == nil {
		return &existing
	}

	key := fmt.Sprintf("quiz-%d-%d", course.ID, moduleID)
	result, _, _ := g.group.Do(key, func() (interface{}, error) {
		var row courseModels.Quiz
		if err := db.Where("course_id = ? AND module_id = ? AND is_deleted = ?", course.ID, moduleID, false).First(&row).Error; err == nil {
			return &row, nil
		}

		quiz := g.generateQuiz(ctx, course, module)
		g.persistQuiz(quiz)
		return quiz, nil
	})

	return result.(*courseModels.Quiz)
}

func (g *Generator) generateQuiz(ctx context.Context, course *courseModels.Course, module *courseModels.Module) *courseModels.Quiz {
	count := CourseQuizQuestions
	topic := course.Title
	var moduleID uint
	if module != nil {
		count = ModuleQuizQuestions
		topic = module.Title
		moduleID = module.ID
	}

	quiz := &courseModels.Quiz{
		CourseID: course.ID,
		ModuleID: moduleID,
	}

	raw, err := g.generate(ctx, quizSystemPrompt, buildQuizPrompt(course, module, count), QuizSchema)
	if err != nil {
		log.Printf("Quiz generation failed for course %d module %d: %v", course.ID, moduleID, err)
		quiz.Questions = placeholderQuestions(topic, count)
		quiz.IsPlaceholder = true
		return quiz
	}

	var out []questionOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("Quiz parse failed for course %d module %d: %v", course.ID, moduleID, err)
		quiz.Questions = placeholderQuestions(topic, count)
		quiz.IsPlaceholder = true
		return quiz
	}

	questions := sanitizeQuestions(out)
	if len(questions) == 0 {
		quiz.Questions = placeholderQuestions(topic, count)
		quiz.IsPlaceholder = true
		return quiz
	}

	quiz.Questions = questions
	return quiz
}

// sanitizeQuestions drops questions whose correct answer is not one of the
// options, and assigns stable ids.
func sanitizeQuestions(out []questionOutput) []courseModels.Question {
	questions := make([]courseModels.Question, 0, len(out))
	for _, q := range out {
		if q.Text == "" || len(q.Options) < 2 {
			continue
		}
		valid := false
		for _, opt := range q.Options {
			if opt == q.Correct {
				valid = true
				break
			}
		}
		if !valid {
			continue
		}

		qType := q.Type
		if qType != courseModels.ModuleTypeVisual {
			qType = courseModels.ModuleTypeTextual
		}

		questions = append(questions, courseModels.Question{
			ID:      len(questions) + 1,
			Text:    q.Text,
			Options: q.Options,
			Correct: q.Correct,
			Type:    qType,
		})
	}
	return questions
}

func (g *Generator) persistQuiz(quiz *courseModels.Quiz) {
	db := database.Database.Db

	if err := db.Create(quiz).Error; err != nil {
		var winner courseModels.Quiz
		if readErr := db.Where("course_id = ? AND module_id = ? AND is_deleted = ?", quiz.CourseID, quiz.ModuleID, false).First(&winner).Error; readErr == nil {
			*quiz = winner
			return
		}
		log.Printf("Failed to persist quiz for course %d module %d: %v", quiz.CourseID, quiz.ModuleID, err)
	}
}
