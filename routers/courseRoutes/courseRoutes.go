package courseRoutes

import (
	controllers "skillflow/controllers/course"
	"skillflow/middleware"
	validators "skillflow/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course, content, quiz and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course CRUD
	courseGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.List(), controllers.GetAllCourses)
	courseGroup.Get("/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Put("/:courseId", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)

	// Enrollment and progress
	courseGroup.Post("/:courseId/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Get("/:courseId/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetUserProgress)
	courseGroup.Post("/:courseId/module/:moduleId/complete", middleware.JWTMiddleware, validators.CourseID(), validators.ModuleID(), controllers.MarkModuleComplete)

	// Module content and learning-style feedback
	courseGroup.Get("/:courseId/module/:moduleId/content", middleware.JWTMiddleware, validators.CourseID(), validators.ModuleID(), controllers.GetModuleContent)
	courseGroup.Post("/:courseId/module/:moduleId/understood", middleware.JWTMiddleware, validators.CourseID(), validators.ModuleID(), validators.MarkUnderstood(), controllers.MarkUnderstood)

	// Quizzes
	courseGroup.Get("/:courseId/module/:moduleId/quiz", middleware.JWTMiddleware, validators.CourseID(), validators.ModuleID(), controllers.GetModuleQuiz)
	courseGroup.Get("/:courseId/quiz", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseQuiz)
	courseGroup.Post("/:courseId/quiz/:quizId/submit", middleware.JWTMiddleware, validators.CourseID(), validators.QuizID(), validators.SubmitQuiz(), controllers.SubmitQuiz)

	// Certificates
	courseGroup.Post("/:courseId/certificate/request", middleware.JWTMiddleware, validators.CourseID(), controllers.RequestCertificate)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
