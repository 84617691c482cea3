package jobsValidator

import (
	"strconv"
	"strings"

	"skillflow/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateJob validates the job listing request body
func CreateJob() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title          string   `json:"title"`
			Company        string   `json:"company"`
			Location       string   `json:"location"`
			Description    string   `json:"description"`
			ApplyURL       string   `json:"apply_url"`
			SkillsRequired []string `json:"skills_required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Company = strings.TrimSpace(reqData.Company)
		reqData.Location = strings.TrimSpace(reqData.Location)

		errors := make(map[string]string)

		if err := validate.Var(reqData.Title, "required,min=3,max=200"); err != nil {
			errors["title"] = "Title must be between 3 and 200 characters!"
		}
		if err := validate.Var(reqData.Company, "required,min=2,max=200"); err != nil {
			errors["company"] = "Company must be between 2 and 200 characters!"
		}
		if reqData.ApplyURL != "" {
			if err := validate.Var(reqData.ApplyURL, "url"); err != nil {
				errors["apply_url"] = "Must be a valid URL!"
			}
		}
		for i, skill := range reqData.SkillsRequired {
			reqData.SkillsRequired[i] = strings.TrimSpace(skill)
			if reqData.SkillsRequired[i] == "" {
				errors["skills_required"] = "Skills cannot be empty!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJob", reqData)
		return c.Next()
	}
}

// JobID validates the :jobId route parameter
func JobID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("jobId")
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid job id!", nil)
		}
		c.Locals("jobID", uint(id))
		return c.Next()
	}
}
