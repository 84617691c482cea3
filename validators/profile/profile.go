package profileValidator

import (
	"strings"

	"skillflow/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateProfile validates the profile update request body
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string   `json:"name"`
			Bio          string   `json:"bio"`
			Skills       []string `json:"skills"`
			ProfileImage string   `json:"profile_image"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Bio = strings.TrimSpace(reqData.Bio)

		errors := make(map[string]string)

		if reqData.Name != "" {
			if err := validate.Var(reqData.Name, "min=2,max=100"); err != nil {
				errors["name"] = "Name must be between 2 and 100 characters!"
			}
		}
		if err := validate.Var(reqData.Bio, "max=1000"); err != nil {
			errors["bio"] = "Bio cannot exceed 1000 characters!"
		}
		if reqData.ProfileImage != "" {
			if err := validate.Var(reqData.ProfileImage, "url"); err != nil {
				errors["profile_image"] = "Must be a valid URL!"
			}
		}
		if len(reqData.Skills) > 50 {
			errors["skills"] = "Cannot list more than 50 skills!"
		}
		for i, skill := range reqData.Skills {
			reqData.Skills[i] = strings.TrimSpace(skill)
			if reqData.Skills[i] == "" {
				errors["skills"] = "Skills cannot be empty!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
