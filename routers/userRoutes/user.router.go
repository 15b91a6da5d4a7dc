package userRoutes

import (
	controllers "lms/controllers/user"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/level", middleware.JWTMiddleware, controllers.GetUserLevel)
}
