package adminRoutes

import (
	adminControllers "skillflow/controllers/admin"
	courseControllers "skillflow/controllers/course"
	"skillflow/middleware"
	adminValidators "skillflow/validators/admin"
	courseValidators "skillflow/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/dashboard/stats", adminControllers.GetDashboardStats)
	adminGroup.Patch("/user/:userId/ban", adminValidators.UserID(), adminValidators.SetBan(), adminControllers.SetUserBan)
	adminGroup.Post("/course/:courseId/takedown", courseValidators.CourseID(), adminControllers.TakedownCourse)
	adminGroup.Get("/certificates/pending", adminControllers.ListPendingCertificates)
	adminGroup.Post("/certificate/:requestId/approve", adminValidators.RequestID(), adminControllers.ApproveCertificate)
	adminGroup.Put("/course/:courseId", courseValidators.CourseID(), courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
}
