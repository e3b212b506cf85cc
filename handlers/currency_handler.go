package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/services"
)

func GetConversionRate(c *fiber.Ctx) error {
	rates, err := services.FetchRates()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch exchange rates"})
	}

	etbRate, ok := rates["ETB"]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "ETB rate not available"})
	}

	return c.JSON(fiber.Map{"usd_to_etb": etbRate})
}
