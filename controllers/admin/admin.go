package adminController

import (
	"time"

	"skillflow/database"
	"skillflow/middleware"
	"skillflow/models"
	courseModels "skillflow/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetDashboardStats returns platform-wide counters for the admin screen
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, bannedUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_deleted = ? AND is_banned = ?", false, true).Count(&bannedUsers)

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var totalEnrollments, completedEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ? AND status = ?", false, "COMPLETED").Count(&completedEnrollments)

	var generatedContents, placeholderContents int64
	db.Model(&courseModels.ModuleContent{}).Where("is_deleted = ?", false).Count(&generatedContents)
	db.Model(&courseModels.ModuleContent{}).Where("is_deleted = ? AND is_placeholder = ?", false, true).Count(&placeholderContents)

	var quizzes, quizAttempts int64
	db.Model(&courseModels.Quiz{}).Where("is_deleted = ?", false).Count(&quizzes)
	db.Model(&courseModels.QuizAttempt{}).Where("is_deleted = ?", false).Count(&quizAttempts)

	var pendingCertificates int64
	db.Model(&courseModels.CertificateRequest{}).Where("is_deleted = ? AND status = ?", false, "PENDING").Count(&pendingCertificates)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"users": fiber.Map{
			"total":  totalUsers,
			"banned": bannedUsers,
		},
		"courses": totalCourses,
		"enrollments": fiber.Map{
			"total":     totalEnrollments,
			"completed": completedEnrollments,
		},
		"generated_contents": fiber.Map{
			"total":       generatedContents,
			"placeholder": placeholderContents,
		},
		"quizzes": fiber.Map{
			"total":    quizzes,
			"attempts": quizAttempts,
		},
		"pending_certificates": pendingCertificates,
	})
}

// SetUserBan bans or unbans a user account
func SetUserBan(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)

	reqData, ok := c.Locals("validatedBan").(*struct {
		Banned bool `json:"banned"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var target models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if target.IsAdmin() {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Cannot ban an admin account!", nil)
	}

	if err := database.Database.Db.Model(&target).Update("is_banned", reqData.Banned).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	message := "User unbanned successfully!"
	if reqData.Banned {
		message = "User banned successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, nil)
}

// TakedownCourse pulls a course from the catalog without deleting it
func TakedownCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	updates := map[string]interface{}{
		"status":       "TAKEN_DOWN",
		"is_published": false,
	}
	if err := database.Database.Db.Model(&course).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to take down course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course taken down successfully!", nil)
}

// ApproveCertificate issues a certificate for a pending request
func ApproveCertificate(c *fiber.Ctx) error {
	requestID := c.Locals("requestID").(uint)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate request already processed!", nil)
	}

	certificate := courseModels.Certificate{
		UserID:        request.UserID,
		CourseID:      request.CourseID,
		CertificateID: uuid.NewString(),
		IssuedAt:      time.Now(),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	if err := tx.Model(&request).Update("status", "APPROVED").Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", certificate)
}

// ListPendingCertificates lists certificate requests awaiting review
func ListPendingCertificates(c *fiber.Ctx) error {
	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", "PENDING", false).
		Order("requested_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificate requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending certificate requests fetched successfully!", fiber.Map{
		"requests": requests,
		"total":    len(requests),
	})
}
