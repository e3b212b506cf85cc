package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
)

type BrokerDashboardResponse struct {
	Profile          models.BrokerProfile `json:"profile"`
	TotalProperties  int64                `json:"total_properties"`
	ActiveProperties int64                `json:"active_properties"`
	TotalInquiries   int64                `json:"total_inquiries"`
	OpenInquiries    int64                `json:"open_inquiries"`
	RecentProperties []models.Property    `json:"recent_properties"`
}

func GetBrokerDashboard(c *fiber.Ctx) error {
	caller := callerIdentity(c)

	var response BrokerDashboardResponse
	if err := database.DB.Where("user_id = ?", caller.UserID).First(&response.Profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Broker profile not found"})
	}

	database.DB.Model(&models.Property{}).Where("broker_id = ?", caller.UserID).Count(&response.TotalProperties)
	database.DB.Model(&models.Property{}).
		Where("broker_id = ? AND status = ?", caller.UserID, models.PropertyActive).
		Count(&response.ActiveProperties)
	database.DB.Model(&models.Inquiry{}).
		Joins("JOIN properties ON properties.id = inquiries.property_id").
		Where("properties.broker_id = ?", caller.UserID).
		Count(&response.TotalInquiries)
	database.DB.Model(&models.Inquiry{}).
		Joins("JOIN properties ON properties.id = inquiries.property_id").
		Where("properties.broker_id = ? AND inquiries.status = ?", caller.UserID, models.InquiryOpen).
		Count(&response.OpenInquiries)

	database.DB.
		Where("broker_id = ?", caller.UserID).
		Order("created_at desc").
		Limit(3).
		Preload("Images").
		Find(&response.RecentProperties)

	return c.JSON(response)
}

type BrokerProfileRequest struct {
	Phone         *string `json:"phone"`
	CompanyName   *string `json:"company_name"`
	LicenseNumber *string `json:"license_number"`
}

func UpdateBrokerProfile(c *fiber.Ctx) error {
	caller := callerIdentity(c)

	var profile models.BrokerProfile
	if err := database.DB.Where("user_id = ?", caller.UserID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Broker profile not found"})
	}

	var req BrokerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.CompanyName != nil {
		profile.CompanyName = req.CompanyName
	}
	if req.LicenseNumber != nil {
		profile.LicenseNumber = req.LicenseNumber
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(profile)
}
