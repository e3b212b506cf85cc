package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/handlers"
	"github.com/nahomt24/addis_estates/middleware"
)

func BrokerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	broker := api.Group("/broker", middleware.Protected(), middleware.BrokerRequired())

	broker.Get("/dashboard", handlers.GetBrokerDashboard)
	broker.Put("/profile", handlers.UpdateBrokerProfile)

	broker.Post("/deposit", handlers.SubmitDeposit)
	broker.Get("/deposits", handlers.GetMyDeposits)

	broker.Get("/properties", handlers.BrokerListProperties)

	broker.Get("/inquiries", handlers.BrokerListInquiries)
	broker.Put("/inquiries/:inquiryId/respond", handlers.MarkInquiryResponded)
}
