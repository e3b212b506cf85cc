package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
	"github.com/nahomt24/addis_estates/services"
	"github.com/shopspring/decimal"
)

// callerIdentity lifts the verified JWT claims into the explicit identity the
// workflow operations take.
func callerIdentity(c *fiber.Ctx) services.Identity {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return services.Identity{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return services.Identity{}
	}
	id, _ := claims["user_id"].(float64)
	role, _ := claims["role"].(string)
	return services.Identity{UserID: uint(id), Role: role}
}

type DepositRequest struct {
	Amount        string `json:"amount" validate:"required"`
	Currency      string `json:"currency"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	TransactionID string `json:"transaction_id"`
	BankReference string `json:"bank_reference"`
	ReceiptURL    string `json:"receipt_url"`
}

func SubmitDeposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid amount"})
	}

	claim := services.DepositClaim{
		Amount:        amount,
		Currency:      req.Currency,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		TransactionID: req.TransactionID,
		BankReference: req.BankReference,
		ReceiptURL:    req.ReceiptURL,
	}

	deposit, err := services.SubmitDeposit(database.DB, callerIdentity(c), claim)
	if err != nil {
		return depositError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Deposit submitted successfully",
		"deposit_id": deposit.ID,
	})
}

func GetMyDeposits(c *fiber.Ctx) error {
	caller := callerIdentity(c)

	var deposits []models.Deposit
	if err := database.DB.
		Where("broker_id = ?", caller.UserID).
		Order("created_at desc").
		Find(&deposits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch deposits"})
	}

	return c.JSON(deposits)
}

func depositError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	case errors.Is(err, services.ErrDuplicateDeposit):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You already have a pending or completed deposit"})
	case errors.Is(err, services.ErrInvalidAction):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	case errors.Is(err, services.ErrDepositNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Deposit not found"})
	case errors.Is(err, services.ErrDepositResolved):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Deposit has already been resolved"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process deposit"})
	}
}
