package profileRoutes

import (
	profileControllers "skillflow/controllers/profile"
	"skillflow/middleware"
	profileValidators "skillflow/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile")

	profileGroup.Get("/", middleware.JWTMiddleware, profileControllers.GetProfile)
	profileGroup.Put("/", middleware.JWTMiddleware, profileValidators.UpdateProfile(), profileControllers.UpdateProfile)
	profileGroup.Get("/analytics", middleware.JWTMiddleware, profileControllers.GetLearningAnalytics)
}
