package controllers

import (
	"log"

	"skillflow/database"
	"skillflow/generation"
	"skillflow/middleware"
	"skillflow/models"
	courseModels "skillflow/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GetModuleQuiz returns the quiz for one module, generating it on first
// access. Correct answers are stripped before serving.
func GetModuleQuiz(c *fiber.Ctx) error {
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

	quiz := generation.Default.GetOrGenerateQuiz(c.Context(), &course, &module)

	return serveQuiz(c, quiz)
}

// GetCourseQuiz returns the whole-course quiz, generating it on first access
func GetCourseQuiz(c *fiber.Ctx) error {
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
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	quiz := generation.Default.GetOrGenerateQuiz(c.Context(), &course, nil)

	return serveQuiz(c, quiz)
}

func serveQuiz(c *fiber.Ctx, quiz *courseModels.Quiz) error {
	served := *quiz
	served.Questions = courseModels.StripAnswers(quiz.Questions)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz": served,
	})
}

// SubmitQuiz scores a submitted answer map and updates progress
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	quizID := c.Locals("quizID").(uint)

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Answers map[int]string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", quizID, courseID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	score, passed := courseModels.EvaluateQuiz(quiz.Questions, reqData.Answers)

	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quizID, false).Count(&attemptCount)

	attempt := courseModels.QuizAttempt{
		UserID:        userID,
		QuizID:        quiz.ID,
		CourseID:      quiz.CourseID,
		ModuleID:      quiz.ModuleID,
		Answers:       datatypes.NewJSONType(reqData.Answers),
		Score:         score,
		MaxScore:      len(quiz.Questions),
		Passed:        passed,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	recordQuizScore(&enrollment, quiz.ID, score)

	if passed && quiz.ModuleID != 0 {
		completeModule(&user, &enrollment, quiz.ModuleID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", fiber.Map{
		"score":     score,
		"max_score": len(quiz.Questions),
		"passed":    passed,
		"attempt":   attempt.AttemptNumber,
	})
}

// recordQuizScore keeps the best score per quiz on the enrollment row
func recordQuizScore(enrollment *courseModels.Enrollment, quizID uint, score int) {
	scores := enrollment.QuizScores.Data()
	if scores == nil {
		scores = map[uint]int{}
	}
	if prev, ok := scores[quizID]; !ok || score > prev {
		scores[quizID] = score
	}

	if err := database.Database.Db.Model(enrollment).
		Update("quiz_scores", datatypes.NewJSONType(scores)).Error; err != nil {
		log.Printf("Failed to record quiz score for enrollment %d: %v", enrollment.ID, err)
	}
}
