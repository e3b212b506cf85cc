package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/handlers"
	"github.com/nahomt24/addis_estates/middleware"
)

func PropertyRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/properties", handlers.ListProperties)
	api.Get("/properties/:propertyId", handlers.GetProperty)

	api.Post("/properties", middleware.Protected(), middleware.BrokerRequired(), handlers.CreateProperty)
	api.Put("/properties/:propertyId", middleware.Protected(), handlers.UpdateProperty)
	api.Delete("/properties/:propertyId", middleware.Protected(), handlers.DeleteProperty)
}
