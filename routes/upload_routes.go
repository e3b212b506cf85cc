package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/handlers"
	"github.com/nahomt24/addis_estates/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	uploads := api.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
