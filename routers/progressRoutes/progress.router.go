package progressRoutes

import (
	controllers "lms/controllers/progress"
	"lms/middleware"
	validators "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes wires the per-unit progress and reward endpoints
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Get("/courses/:courseId", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseProgress)
	progressGroup.Post("/courses/:courseId/units/:unitId", middleware.JWTMiddleware, validators.CourseUnit(), validators.UpdateProgress(), controllers.UpdateProgress)
	progressGroup.Post("/courses/:courseId/units/:unitId/deliver", middleware.JWTMiddleware, validators.CourseUnit(), controllers.DeliverUnit)
}
