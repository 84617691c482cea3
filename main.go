package main

import (
	"skillflow/config"
	"skillflow/database"
	"skillflow/generation"
	adminRoutes "skillflow/routers/adminRoutes"
	authRoutes "skillflow/routers/authRoutes"
	courseRoutes "skillflow/routers/courseRoutes"
	jobRoutes "skillflow/routers/jobRoutes"
	profileRoutes "skillflow/routers/profileRoutes"
	"skillflow/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	generation.Init()
	utils.StartScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	jobRoutes.SetupJobRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
