package uploadRoutes

import (
	controllers "lms/controllers/upload"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUploadRoutes(app *fiber.App) {
	uploadGroup := app.Group("/upload")

	uploadGroup.Post("/video", middleware.JWTMiddleware, controllers.UploadVideo)
}
