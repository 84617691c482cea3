package generation

import (
	"fmt"
	"strings"

	courseModels "skillflow/models/course"
)

const contentSystemPrompt = `You are an expert course author for an online learning platform. You write clear, well-structured lessons that mix explanatory text with diagram descriptions. Diagrams are described as mermaid source so the client can render them.`

func buildContentPrompt(course *courseModels.Course, module *courseModels.Module) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", course.Title))
	if course.Description != "" {
		b.WriteString(fmt.Sprintf("Course description: %s\n", course.Description))
	}
	if len(course.SkillsOffered) > 0 {
		b.WriteString(fmt.Sprintf("Skills taught: %s\n", strings.Join(course.SkillsOffered, ", ")))
	}
	if course.SystemPrompt != "" {
		b.WriteString(fmt.Sprintf("Author instructions: %s\n", course.SystemPrompt))
	}

	b.WriteString(fmt.Sprintf("\nModule: %s\n", module.Title))
	if module.Description != "" {
		b.WriteString(fmt.Sprintf("Module description: %s\n", module.Description))
	}
	b.WriteString(fmt.Sprintf("Module style: %s\n", module.Type))

	b.WriteString(`
Instructions:
Write the full content for this module:
1. A summary of 2-3 sentences.
2. A long-form lesson body in markdown. Cover the module topic completely,
   with headings, examples, and short paragraphs.
3. 1-4 visual items. For DIAGRAM items include valid mermaid source in
   diagram_source. Prefer diagrams for VISUAL modules and keep them minimal
   for TEXTUAL modules.`)

	return b.String()
}

const quizSystemPrompt = `You are an assessment writer for an online learning platform. You write fair multiple choice questions that test understanding, not memorization of wording.`

func buildQuizPrompt(course *courseModels.Course, module *courseModels.Module, questionCount int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", course.Title))
	if module != nil {
		b.WriteString(fmt.Sprintf("Module: %s\n", module.Title))
		if module.Description != "" {
			b.WriteString(fmt.Sprintf("Module description: %s\n", module.Description))
		}
	} else {
		b.WriteString("Scope: the entire course\n")
		if course.Description != "" {
			b.WriteString(fmt.Sprintf("Course description: %s\n", course.Description))
		}
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Write exactly %d multiple choice questions as a JSON array:
1. Each question has 4 options and exactly one correct answer.
2. The correct field must match one of the options verbatim.
3. Mix question difficulty. No trick questions.
4. Set type to VISUAL for questions about diagrams or layouts, TEXTUAL otherwise.`, questionCount))

	return b.String()
}

const modulesSystemPrompt = `You are a curriculum designer for an online learning platform. You break a course topic into a short ordered sequence of modules a learner can work through one at a time.`

func buildModulesPrompt(course *courseModels.Course) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", course.Title))
	if course.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", course.Description))
	}
	if len(course.SkillsOffered) > 0 {
		b.WriteString(fmt.Sprintf("Skills taught: %s\n", strings.Join(course.SkillsOffered, ", ")))
	}
	if course.SystemPrompt != "" {
		b.WriteString(fmt.Sprintf("Author instructions: %s\n", course.SystemPrompt))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Design the module outline for this course:
1. Between 3 and %d modules, ordered from fundamentals to advanced topics.
2. Every module needs a concise title and a 1-2 sentence description.
3. Set type to VISUAL for diagram-heavy topics, TEXTUAL for theory, MIXED otherwise.`, MaxModulesPerCourse))

	return b.String()
}
