package courseValidator

import (
	"strconv"
	"strings"

	"skillflow/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseIDParam converts a route parameter to a uint id.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// CourseID validates the :courseId route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// ModuleID validates the :moduleId route parameter
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "moduleId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid module id!", nil)
		}
		c.Locals("moduleID", id)
		return c.Next()
	}
}

// QuizID validates the :quizId route parameter
func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseIDParam(c, "quizId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}
		c.Locals("quizID", id)
		return c.Next()
	}
}

// CreateCourse validates the course creation request body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string   `json:"title"`
			Description   string   `json:"description"`
			SkillsOffered []string `json:"skills_offered"`
			CoverImageURL string   `json:"cover_image_url"`
			SystemPrompt  string   `json:"system_prompt"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		errors := make(map[string]string)

		if err := validate.Var(reqData.Title, "required,min=3,max=200"); err != nil {
			errors["title"] = "Title must be between 3 and 200 characters!"
		}
		if err := validate.Var(reqData.Description, "required,min=10,max=5000"); err != nil {
			errors["description"] = "Description must be between 10 and 5000 characters!"
		}
		if reqData.CoverImageURL != "" {
			if err := validate.Var(reqData.CoverImageURL, "url"); err != nil {
				errors["cover_image_url"] = "Must be a valid URL!"
			}
		}
		for i, skill := range reqData.SkillsOffered {
			reqData.SkillsOffered[i] = strings.TrimSpace(skill)
			if reqData.SkillsOffered[i] == "" {
				errors["skills_offered"] = "Skills cannot be empty!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the course update request body
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title         string   `json:"title"`
			Description   string   `json:"description"`
			SkillsOffered []string `json:"skills_offered"`
			CoverImageURL string   `json:"cover_image_url"`
			Status        string   `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))

		errors := make(map[string]string)

		if reqData.Title != "" {
			if err := validate.Var(reqData.Title, "min=3,max=200"); err != nil {
				errors["title"] = "Title must be between 3 and 200 characters!"
			}
		}
		if reqData.CoverImageURL != "" {
			if err := validate.Var(reqData.CoverImageURL, "url"); err != nil {
				errors["cover_image_url"] = "Must be a valid URL!"
			}
		}
		if reqData.Status != "" && reqData.Status != "ACTIVE" && reqData.Status != "INACTIVE" {
			errors["status"] = "Status must be ACTIVE or INACTIVE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// List validates optional pagination query parameters
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if raw := c.Query("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil || page < 1 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid page number!", nil)
			}
			reqData.Page = &page
		}
		if raw := c.Query("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 || limit > 100 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Limit must be between 1 and 100!", nil)
			}
			reqData.Limit = &limit
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// MarkUnderstood validates the feedback request body
func MarkUnderstood() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ItemIndex int    `json:"item_index"`
			Style     string `json:"style"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Style = strings.ToUpper(strings.TrimSpace(reqData.Style))

		errors := make(map[string]string)

		if reqData.ItemIndex < 0 {
			errors["item_index"] = "Item index cannot be negative!"
		}
		if reqData.Style != "VISUAL" && reqData.Style != "TEXTUAL" {
			errors["style"] = "Style must be VISUAL or TEXTUAL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMark", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates the quiz submission request body
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[int]string `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"answers": "At least one answer is required!",
			})
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
