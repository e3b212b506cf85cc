package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
	"github.com/nahomt24/addis_estates/websocket"
)

type InquiryRequest struct {
	PropertyID uint   `json:"property_id" validate:"required"`
	CustomerID *uint  `json:"customer_id"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message" validate:"required"`
}

// CreateInquiry is open to anonymous visitors; customer_id is only set when
// the caller chose to identify themselves.
func CreateInquiry(c *fiber.Ctx) error {
	var req InquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var property models.Property
	if err := database.DB.First(&property, "id = ?", req.PropertyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Property not found"})
	}

	inquiry := models.Inquiry{
		PropertyID: req.PropertyID,
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Status:     models.InquiryOpen,
	}

	if err := database.DB.Create(&inquiry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create inquiry"})
	}

	select {
	case websocket.NotifyInquiry <- &inquiry:
	default:
		// Hub not draining; the broker still sees it on next dashboard load.
	}

	return c.Status(fiber.StatusCreated).JSON(inquiry)
}

func BrokerListInquiries(c *fiber.Ctx) error {
	caller := callerIdentity(c)

	query := database.DB.Model(&models.Inquiry{}).
		Joins("JOIN properties ON properties.id = inquiries.property_id").
		Where("properties.broker_id = ?", caller.UserID)

	if status := c.Query("status"); status != "" {
		query = query.Where("inquiries.status = ?", status)
	}

	var inquiries []models.Inquiry
	if err := query.
		Order("inquiries.created_at desc").
		Preload("Property").
		Find(&inquiries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch inquiries"})
	}

	return c.JSON(inquiries)
}

func MarkInquiryResponded(c *fiber.Ctx) error {
	caller := callerIdentity(c)
	inquiryID := c.Params("inquiryId")

	var inquiry models.Inquiry
	if err := database.DB.Preload("Property").First(&inquiry, "id = ?", inquiryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inquiry not found"})
	}

	if inquiry.Property.BrokerID != caller.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	inquiry.Status = models.InquiryResponded
	if err := database.DB.Save(&inquiry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update inquiry"})
	}

	return c.JSON(inquiry)
}
