package controllers

import (
	"errors"
	"log"
	"time"

	"skillflow/database"
	"skillflow/generation"
	"skillflow/middleware"
	"skillflow/models"
	courseModels "skillflow/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetModuleContent returns the generated content for a module, producing it
// on first access. Enrolled users only.
func GetModuleContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	content := generation.Default.GetOrGenerateContent(c.Context(), &course, &module)

	// Track which items this user already marked, so the client can grey
	// out the buttons.
	var marks []courseModels.UnderstoodMark
	database.Database.Db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, moduleID, false).Find(&marks)

	markedIndexes := make([]int, len(marks))
	for i, m := range marks {
		markedIndexes[i] = m.ItemIndex
	}

	touchLastAccessed(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module content fetched successfully!", fiber.Map{
		"module":         module,
		"content":        content,
		"marked_indexes": markedIndexes,
	})
}

// MarkUnderstood records an "I understood better with this" click on one
// content item and bumps the matching learning-style counter. Clicking the
// same item twice is a no-op.
func MarkUnderstood(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	reqData, ok := c.Locals("validatedMark").(*struct {
		ItemIndex int    `json:"item_index"`
		Style     string `json:"style"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	// The unique index on (user, module, item) makes this idempotent: the
	// second insert fails and no points are counted again.
	mark := courseModels.UnderstoodMark{
		UserID:    userID,
		ModuleID:  moduleID,
		ItemIndex: reqData.ItemIndex,
		Style:     reqData.Style,
	}
	if err := database.Database.Db.Create(&mark).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Already marked.", pointsSnapshot(&user))
		}
		var existing courseModels.UnderstoodMark
		if database.Database.Db.Where("user_id = ? AND module_id = ? AND item_index = ? AND is_deleted = ?",
			userID, moduleID, reqData.ItemIndex, false).First(&existing).Error == nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Already marked.", pointsSnapshot(&user))
		}
		log.Printf("Failed to record understood mark: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record feedback!", nil)
	}

	// Server-side increment so two tabs cannot write stale counts.
	column := "textual_points"
	if reqData.Style == courseModels.ModuleTypeVisual {
		column = "visual_points"
	}
	if err := database.Database.Db.Model(&models.User{}).Where("id = ?", userID).
		Update(column, gorm.Expr(column+" + 1")).Error; err != nil {
		log.Printf("Failed to increment %s for user %d: %v", column, userID, err)
	}

	database.Database.Db.Where("id = ?", userID).First(&user)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback recorded!", pointsSnapshot(&user))
}

func pointsSnapshot(user *models.User) fiber.Map {
	return fiber.Map{
		"visual_points":  user.VisualPoints,
		"textual_points": user.TextualPoints,
	}
}

// touchLastAccessed stamps the enrollment without failing the request
func touchLastAccessed(enrollment *courseModels.Enrollment) {
	now := time.Now()
	if err := database.Database.Db.Model(enrollment).Update("last_accessed_at", now).Error; err != nil {
		log.Printf("Failed to update last accessed for enrollment %d: %v", enrollment.ID, err)
	}
}
