package generation

import (
	"context"
	"encoding/json"
	"log"

	courseModels "skillflow/models/course"
)

type modulesOutput struct {
	Modules []moduleOutput `json:"modules"`
}

type moduleOutput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// GenerateModules produces the module outline for a freshly created course.
// At most MaxModulesPerCourse descriptors are returned, each with a non-empty
// title and description. The caller persists them. Falls back to a
// deterministic five-module outline when generation fails.
func (g *Generator) GenerateModules(ctx context.Context, course *courseModels.Course) []courseModels.Module {
	raw, err := g.generate(ctx, modulesSystemPrompt, buildModulesPrompt(course), ModulesSchema)
	if err != nil {
		log.Printf("Module outline generation failed for course %d: %v", course.ID, err)
		return placeholderModules(course)
	}

	var out modulesOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("Module outline parse failed for course %d: %v", course.ID, err)
		return placeholderModules(course)
	}

	modules := make([]courseModels.Module, 0, len(out.Modules))
	for _, m := range out.Modules {
		if m.Title == "" || m.Description == "" {
			continue
		}
		if len(modules) == MaxModulesPerCourse {
			break
		}

		mType := m.Type
		switch mType {
		case courseModels.ModuleTypeVisual, courseModels.ModuleTypeTextual:
		default:
			mType = courseModels.ModuleTypeMixed
		}

		modules = append(modules, courseModels.Module{
			CourseID:    course.ID,
			Title:       m.Title,
			Description: m.Description,
			OrderIndex:  len(modules) + 1,
			Type:        mType,
		})
	}

	if len(modules) == 0 {
		return placeholderModules(course)
	}
	return modules
}
