package jobRoutes

import (
	jobsControllers "skillflow/controllers/jobs"
	"skillflow/middleware"
	jobsValidators "skillflow/validators/jobs"

	"github.com/gofiber/fiber/v2"
)

func SetupJobRoutes(app *fiber.App) {
	jobGroup := app.Group("/jobs")

	jobGroup.Get("/search", middleware.JWTMiddleware, jobsControllers.SearchJobs)
	jobGroup.Post("/create", middleware.JWTMiddleware, middleware.AdminOnly, jobsValidators.CreateJob(), jobsControllers.CreateJobListing)
	jobGroup.Delete("/:jobId", middleware.JWTMiddleware, middleware.AdminOnly, jobsValidators.JobID(), jobsControllers.DeactivateJobListing)
}
