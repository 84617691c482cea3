package profileController

import (
	"skillflow/database"
	"skillflow/middleware"
	"skillflow/models"
	courseModels "skillflow/models/course"

	"github.com/gofiber/fiber/v2"
)

// DisplayPointsCap is the ceiling applied to learning-style points when they
// are served for the analytics dashboard. Raw counters keep growing; only the
// displayed value is clamped.
const DisplayPointsCap = 50

func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name         string   `json:"name"`
		Bio          string   `json:"bio"`
		Skills       []string `json:"skills"`
		ProfileImage string   `json:"profile_image"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Bio != "" {
		user.Bio = reqData.Bio
	}
	if reqData.Skills != nil {
		user.Skills = reqData.Skills
	}
	if reqData.ProfileImage != "" {
		user.ProfileImage = reqData.ProfileImage
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// GetLearningAnalytics serves the learning-style dashboard numbers
func GetLearningAnalytics(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	visual := capPoints(user.VisualPoints)
	textual := capPoints(user.TextualPoints)

	preference := "BALANCED"
	if visual > textual {
		preference = "VISUAL"
	} else if textual > visual {
		preference = "TEXTUAL"
	}

	var enrollments int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).Count(&enrollments)

	var completed int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND status = ? AND is_deleted = ?", userID, "COMPLETED", false).Count(&completed)

	var attempts int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).Count(&attempts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", fiber.Map{
		"visual_points":     visual,
		"textual_points":    textual,
		"preference":        preference,
		"enrolled_courses":  enrollments,
		"completed_courses": completed,
		"quiz_attempts":     attempts,
	})
}

func capPoints(points int) int {
	if points > DisplayPointsCap {
		return DisplayPointsCap
	}
	return points
}
