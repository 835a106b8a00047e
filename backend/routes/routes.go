package routes

import (
	"edubridge/backend/catalog"
	"edubridge/backend/config"
	"edubridge/backend/controllers"
	"edubridge/backend/middleware"
	"edubridge/backend/resources"
	"edubridge/backend/session"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, cat *catalog.Catalog, sessions *session.Store, retriever resources.Retriever, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(sessions, cfg)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/signup", authController.Signup)
	app.Post("/api/auth/logout", authController.Logout)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(sessions, cfg)

	// Public catalog routes; these stay reachable pre-login
	coursesController := controllers.NewCoursesController(cat, sessions, cfg)
	app.Get("/api/landing", coursesController.Landing)
	app.Get("/api/courses", coursesController.ListCourses)
	app.Get("/api/courses/:id", coursesController.GetCourseDetails)

	lessonsController := controllers.NewLessonsController(cat, sessions, retriever, cfg)
	app.Get("/api/courses/:courseId/lessons/:lessonId", lessonsController.GetLesson)
	app.Get("/api/resources/:id/download", lessonsController.DownloadResource)

	// Session-bound routes
	app.Post("/api/courses/:id/enroll", authMiddleware, coursesController.Enroll)
	app.Post("/api/courses/:courseId/lessons/:lessonId/complete", authMiddleware, lessonsController.Complete)
	app.Get("/api/dashboard", authMiddleware, coursesController.Dashboard)

	profileController := controllers.NewProfileController(cat, sessions, cfg)
	app.Get("/api/profile", authMiddleware, profileController.GetProfile)
}
