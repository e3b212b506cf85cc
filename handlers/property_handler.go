package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
	"github.com/nahomt24/addis_estates/utils"
	"gorm.io/gorm"
)

// ListProperties is the public search endpoint. Only ACTIVE listings whose
// broker has a verified activation deposit are visible.
func ListProperties(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Property{}).
		Joins("JOIN broker_profiles ON broker_profiles.user_id = properties.broker_id").
		Where("properties.status = ? AND broker_profiles.active = ?", models.PropertyActive, true)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(properties.title) LIKE ? OR LOWER(properties.description) LIKE ?", term, term)
	}
	if ptype := c.Query("type"); ptype != "" && ptype != "all" {
		query = query.Where("properties.type = ?", ptype)
	}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		query = query.Where("LOWER(properties.city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}

	var properties []models.Property
	if err := query.
		Order("properties.created_at desc").
		Preload("Images").
		Preload("Broker").
		Find(&properties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch properties"})
	}

	return c.JSON(properties)
}

func GetProperty(c *fiber.Ctx) error {
	propertyID := c.Params("propertyId")

	var property models.Property
	if err := database.DB.
		Preload("Images").
		Preload("Broker").
		Preload("Broker.BrokerProfile").
		First(&property, "id = ?", propertyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	return c.JSON(property)
}

type PropertyRequest struct {
	Title       string   `json:"title" validate:"required,min=5"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Currency    string   `json:"currency" validate:"omitempty,iso4217"`
	Type        string   `json:"type" validate:"required,oneof=HOUSE APARTMENT LAND COMMERCIAL OFFICE"`
	Status      string   `json:"status" validate:"omitempty,oneof=ACTIVE SOLD RENTED INACTIVE"`
	Address     string   `json:"address"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	Bedrooms    *int     `json:"bedrooms"`
	Bathrooms   *int     `json:"bathrooms"`
	AreaSqm     *float64 `json:"area_sqm"`
	ImageURLs   []string `json:"image_urls"`
}

func CreateProperty(c *fiber.Ctx) error {
	caller := callerIdentity(c)

	var req PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var property models.Property
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		referenceCode, err := utils.GenerateUniqueReferenceCode(tx)
		if err != nil {
			return err
		}

		property = models.Property{
			BrokerID:      caller.UserID,
			ReferenceCode: referenceCode,
			Title:         req.Title,
			Description:   req.Description,
			Price:         req.Price,
			Currency:      currencyOrDefault(req.Currency),
			Type:          req.Type,
			Status:        statusOrDefault(req.Status),
			Address:       req.Address,
			City:          req.City,
			State:         req.State,
			Country:       req.Country,
			Bedrooms:      req.Bedrooms,
			Bathrooms:     req.Bathrooms,
			AreaSqm:       req.AreaSqm,
		}
		if err := tx.Create(&property).Error; err != nil {
			return err
		}

		for i, url := range req.ImageURLs {
			image := models.PropertyImage{PropertyID: property.ID, URL: url, Position: i}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create property"})
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

func UpdateProperty(c *fiber.Ctx) error {
	caller := callerIdentity(c)
	propertyID := c.Params("propertyId")

	var property models.Property
	if err := database.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	if property.BrokerID != caller.UserID && caller.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	var req PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	property.Title = req.Title
	property.Description = req.Description
	property.Price = req.Price
	property.Currency = currencyOrDefault(req.Currency)
	property.Type = req.Type
	property.Status = statusOrDefault(req.Status)
	property.Address = req.Address
	property.City = req.City
	property.State = req.State
	property.Country = req.Country
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.AreaSqm = req.AreaSqm

	if err := database.DB.Save(&property).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update property"})
	}

	return c.JSON(property)
}

func DeleteProperty(c *fiber.Ctx) error {
	caller := callerIdentity(c)
	propertyID := c.Params("propertyId")

	var property models.Property
	if err := database.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	if property.BrokerID != caller.UserID && caller.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", property.ID).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", property.ID).Delete(&models.Inquiry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&property).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete property"})
	}

	return c.JSON(fiber.Map{"message": "Property deleted"})
}

func BrokerListProperties(c *fiber.Ctx) error {
	caller := callerIdentity(c)

	var properties []models.Property
	if err := database.DB.
		Where("broker_id = ?", caller.UserID).
		Order("created_at desc").
		Preload("Images").
		Find(&properties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch properties"})
	}

	return c.JSON(properties)
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "ETB"
	}
	return currency
}

func statusOrDefault(status string) string {
	if status == "" {
		return models.PropertyActive
	}
	return status
}
