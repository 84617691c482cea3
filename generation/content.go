package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"skillflow/database"
	courseModels "skillflow/models/course"
)

type contentOutput struct {
	Summary     string             `json:"summary"`
	TextContent string             `json:"text_content"`
	VisualItems []visualItemOutput `json:"visual_items"`
}

type visualItemOutput struct {
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	DiagramSource string `json:"diagram_source"`
	URL           string `json:"url"`
}

// GetOrGenerateContent returns the content row for a module, generating and
// persisting it on first access. It always returns a usable payload: if every
// generation path fails the deterministic placeholder is stored and returned.
func (g *Generator) GetOrGenerateContent(ctx context.Context, course *courseModels.Course, module *courseModels.Module) *courseModels.ModuleContent {
	db := database.Database.Db

	// Cache hit short-circuits before any provider call.
	var existing courseModels.ModuleContent
	if err := db.Where("module_id = ? AND is_deleted = ?", module.ID, false).First(&existing).Error; err == nil {
		return &existing
	}

	key := fmt.Sprintf("content-%d", module.ID)
	result, _, _ := g.group.Do(key, func() (interface{}, error) {
		// Re-check inside the flight: a concurrent caller may have
		// persisted while we waited.
		var row courseModels.ModuleContent
		if err := db.Where("module_id = ? AND is_deleted = ?", module.ID, false).First(&row).Error; err == nil {
			return &row, nil
		}

		content := g.generateContent(ctx, course, module)
		g.persistContent(content)
		return content, nil
	})

	return result.(*courseModels.ModuleContent)
}

// generateContent asks the provider for module content, falling back to the
// placeholder on any failure.
func (g *Generator) generateContent(ctx context.Context, course *courseModels.Course, module *courseModels.Module) *courseModels.ModuleContent {
	raw, err := g.generate(ctx, contentSystemPrompt, buildContentPrompt(course, module), ContentSchema)
	if err != nil {
		log.Printf("Content generation failed for module %d: %v", module.ID, err)
		return placeholderContent(module)
	}

	var out contentOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("Content parse failed for module %d: %v", module.ID, err)
		return placeholderContent(module)
	}
	if out.Summary == "" || out.TextContent == "" {
		log.Printf("Content generation returned empty fields for module %d", module.ID)
		return placeholderContent(module)
	}

	items := make([]courseModels.VisualItem, 0, len(out.VisualItems))
	for _, v := range out.VisualItems {
		if v.Title == "" {
			continue
		}
		items = append(items, courseModels.VisualItem{
			Kind:          v.Kind,
			Title:         v.Title,
			Description:   v.Description,
			DiagramSource: v.DiagramSource,
			URL:           v.URL,
		})
	}

	return &courseModels.ModuleContent{
		ModuleID:    module.ID,
		CourseID:    module.CourseID,
		Summary:     out.Summary,
		TextContent: out.TextContent,
		VisualItems: items,
	}
}

// persistContent stores generated content, tolerating a lost race on the
// unique module index by adopting the winner's row.
func (g *Generator) persistContent(content *courseModels.ModuleContent) {
	db := database.Database.Db

	if err := db.Create(content).Error; err != nil {
		var winner courseModels.ModuleContent
		if readErr := db.Where("module_id = ? AND is_deleted = ?", content.ModuleID, false).First(&winner).Error; readErr == nil {
			*content = winner
			return
		}
		log.Printf("Failed to persist content for module %d: %v", content.ModuleID, err)
	}
}
