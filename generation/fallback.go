package generation

import (
	"fmt"

	courseModels "skillflow/models/course"
)

// Placeholder content is deterministic: same module in, same payload out.
// It keeps the learner unblocked when every generation path has failed.

func placeholderContent(module *courseModels.Module) *courseModels.ModuleContent {
	summary := fmt.Sprintf("This module covers %s. Generated content is temporarily unavailable, so a study outline is shown instead.", module.Title)

	text := fmt.Sprintf(`# %s

%s

## What to focus on

- Understand the key terms and ideas behind %s.
- Work through the topic with your own examples.
- Retry this module later to get the full generated lesson.
`, module.Title, module.Description, module.Title)

	return &courseModels.ModuleContent{
		ModuleID:    module.ID,
		CourseID:    module.CourseID,
		Summary:     summary,
		TextContent: text,
		VisualItems: []courseModels.VisualItem{
			{
				Kind:          courseModels.VisualKindDiagram,
				Title:         fmt.Sprintf("%s overview", module.Title),
				Description:   fmt.Sprintf("A high-level map of %s.", module.Title),
				DiagramSource: fmt.Sprintf("graph TD\n    A[%s] --> B[Core Concepts]\n    A --> C[Practice]\n    B --> D[Review]", module.Title),
			},
		},
		IsPlaceholder: true,
	}
}

func placeholderQuestions(topic string, count int) []courseModels.Question {
	questions := make([]courseModels.Question, count)
	for i := 0; i < count; i++ {
		questions[i] = courseModels.Question{
			ID:      i + 1,
			Text:    fmt.Sprintf("Question %d about %s", i+1, topic),
			Options: []string{"Option A", "Option B", "Option C", "Option D"},
			Correct: "Option A",
			Type:    courseModels.ModuleTypeTextual,
		}
	}
	return questions
}

func placeholderModules(course *courseModels.Course) []courseModels.Module {
	titles := []struct {
		title string
		kind  string
	}{
		{fmt.Sprintf("Introduction to %s", course.Title), courseModels.ModuleTypeMixed},
		{fmt.Sprintf("Core Concepts of %s", course.Title), courseModels.ModuleTypeTextual},
		{fmt.Sprintf("%s in Practice", course.Title), courseModels.ModuleTypeVisual},
		{fmt.Sprintf("Common Pitfalls in %s", course.Title), courseModels.ModuleTypeTextual},
		{fmt.Sprintf("Next Steps with %s", course.Title), courseModels.ModuleTypeMixed},
	}

	modules := make([]courseModels.Module, len(titles))
	for i, t := range titles {
		modules[i] = courseModels.Module{
			CourseID:    course.ID,
			Title:       t.title,
			Description: fmt.Sprintf("Part %d of %s.", i+1, course.Title),
			OrderIndex:  i + 1,
			Type:        t.kind,
		}
	}
	return modules
}
