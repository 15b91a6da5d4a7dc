package orderRoutes

import (
	controllers "lms/controllers/order"
	"lms/middleware"
	validators "lms/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/orders")

	orderGroup.Post("/", middleware.JWTMiddleware, validators.CreateOrder(), controllers.CreateOrder)
	orderGroup.Put("/:id/pay", middleware.JWTMiddleware, validators.OrderID(), validators.PayOrder(), controllers.PayOrder)
	orderGroup.Post("/:id/cancel", middleware.JWTMiddleware, validators.OrderID(), controllers.CancelOrder)
	orderGroup.Get("/my", middleware.JWTMiddleware, controllers.GetMyOrders)

	userGroup := app.Group("/user")
	userGroup.Get("/courses", middleware.JWTMiddleware, controllers.GetMyCourses)
}
