package controllers

import (
	"log"
	"time"

	"skillflow/database"
	"skillflow/middleware"
	"skillflow/models"
	courseModels "skillflow/models/course"
	"skillflow/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, "ACTIVE").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	// Friendly duplicate check; the unique index on (user_id, course_id)
	// catches the race where two requests pass this at the same time.
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   "ENROLLED",
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		if database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingEnrollment).Error == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the current user's enrollments with course info
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseTitle       string `json:"course_title"`
		CourseDescription string `json:"course_description"`
		CourseCreator     string `json:"course_creator"`
		CourseCoverURL    string `json:"course_cover_url"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:        e,
			CourseTitle:       course.Title,
			CourseDescription: course.Description,
			CourseCreator:     course.CreatorName,
			CourseCoverURL:    course.CoverImageURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}

// MarkModuleComplete marks one module finished for the current user
func MarkModuleComplete(c *fiber.Ctx) error {
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

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	completeModule(&user, &enrollment, moduleID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module marked complete!", fiber.Map{
		"enrollment": enrollment,
	})
}

// GetUserProgress returns completion state for a course
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&modules)

	completed := make(map[uint]bool, len(enrollment.CompletedModuleIDs))
	for _, id := range enrollment.CompletedModuleIDs {
		completed[id] = true
	}

	type ModuleProgress struct {
		ModuleID    uint   `json:"module_id"`
		Title       string `json:"title"`
		Type        string `json:"type"`
		OrderIndex  int    `json:"order_index"`
		IsCompleted bool   `json:"is_completed"`
	}

	moduleProgress := make([]ModuleProgress, len(modules))
	for i, m := range modules {
		moduleProgress[i] = ModuleProgress{
			ModuleID:    m.ID,
			Title:       m.Title,
			Type:        m.Type,
			OrderIndex:  m.OrderIndex,
			IsCompleted: completed[m.ID],
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":      enrollment,
		"quiz_scores":     enrollment.QuizScores.Data(),
		"module_progress": moduleProgress,
	})
}

// completeModule adds a module to the enrollment's completed set and
// recomputes progress. Already-completed modules are no-ops.
func completeModule(user *models.User, enrollment *courseModels.Enrollment, moduleID uint) {
	for _, id := range enrollment.CompletedModuleIDs {
		if id == moduleID {
			return
		}
	}

	enrollment.CompletedModuleIDs = append(enrollment.CompletedModuleIDs, moduleID)
	updateEnrollmentProgress(user, enrollment)
}

// updateEnrollmentProgress recomputes percentage and status from the
// completed module set, and sends the completion email on the transition
// to 100%.
func updateEnrollmentProgress(user *models.User, enrollment *courseModels.Enrollment) {
	var totalModules int64
	database.Database.Db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", enrollment.CourseID, false).Count(&totalModules)

	wasCompleted := enrollment.Status == "COMPLETED"

	if totalModules > 0 {
		enrollment.Progress = float64(len(enrollment.CompletedModuleIDs)) / float64(totalModules) * 100
	}

	if enrollment.Progress >= 100 {
		enrollment.Status = "COMPLETED"
		now := time.Now()
		enrollment.CompletedAt = &now
	} else if enrollment.Progress > 0 {
		enrollment.Status = "IN_PROGRESS"
	}

	updates := map[string]interface{}{
		"completed_module_ids": datatypes.JSONSlice[uint](enrollment.CompletedModuleIDs),
		"progress":             enrollment.Progress,
		"status":               enrollment.Status,
		"completed_at":         enrollment.CompletedAt,
	}
	if err := database.Database.Db.Model(enrollment).Updates(updates).Error; err != nil {
		log.Printf("Failed to update progress for enrollment %d: %v", enrollment.ID, err)
		return
	}

	if enrollment.Status == "COMPLETED" && !wasCompleted {
		var course courseModels.Course
		if database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course).Error == nil {
			go utils.SendCourseCompletionEmail(user.Email, user.Name, course.Title)
		}
	}
}
