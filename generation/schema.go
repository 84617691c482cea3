package generation

import "skillflow/llm"

// ContentSchema is the JSON shape requested for module content.
var ContentSchema = &llm.Schema{
	Name:        "module-content",
	Description: "Generated learning content for one course module",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"summary", "text_content", "visual_items"},
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three sentence overview of the module",
			},
			"text_content": map[string]any{
				"type":        "string",
				"description": "Long-form lesson body in markdown",
			},
			"visual_items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"kind", "title", "description"},
					"properties": map[string]any{
						"kind":           map[string]any{"type": "string", "enum": []any{"DIAGRAM", "IMAGE", "CHART"}},
						"title":          map[string]any{"type": "string"},
						"description":    map[string]any{"type": "string"},
						"diagram_source": map[string]any{"type": "string"},
						"url":            map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

// QuizSchema is the JSON shape requested for quiz questions.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Multiple choice quiz questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"text", "options", "correct"},
			"properties": map[string]any{
				"text":    map[string]any{"type": "string"},
				"options": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"correct": map[string]any{"type": "string"},
				"type":    map[string]any{"type": "string", "enum": []any{"VISUAL", "TEXTUAL"}},
			},
		},
	},
}

// ModulesSchema is the JSON shape requested for a course module outline.
var ModulesSchema = &llm.Schema{
	Name:        "course-modules",
	Description: "Ordered module outline for a new course",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"modules"},
		"properties": map[string]any{
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"title", "description"},
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"type":        map[string]any{"type": "string", "enum": []any{"VISUAL", "TEXTUAL", "MIXED"}},
					},
				},
			},
		},
	},
}
