package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/handlers"
	"github.com/nahomt24/addis_estates/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/dashboard", handlers.GetDashboardStats)

	admin.Get("/deposits", handlers.AdminListDeposits)
	admin.Put("/deposits/:depositId", handlers.ResolveDeposit)

	admin.Get("/brokers", handlers.AdminListBrokers)
	admin.Put("/brokers/:brokerId/approve", handlers.ApproveBroker)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
}
