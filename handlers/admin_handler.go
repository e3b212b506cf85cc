package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
	"github.com/nahomt24/addis_estates/notifications"
	"github.com/nahomt24/addis_estates/services"
)

func AdminListDeposits(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Deposit{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var deposits []models.Deposit
	if err := query.
		Order("created_at desc").
		Preload("Broker").
		Preload("Verifier").
		Find(&deposits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch deposits"})
	}

	return c.JSON(deposits)
}

type ResolveDepositRequest struct {
	Action     string `json:"action" validate:"required"`
	AdminNotes string `json:"admin_notes"`
}

func ResolveDeposit(c *fiber.Ctx) error {
	depositID, err := strconv.ParseUint(c.Params("depositId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid deposit id"})
	}

	var req ResolveDepositRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	deposit, err := services.ResolveDeposit(database.DB, callerIdentity(c), uint(depositID), req.Action, req.AdminNotes)
	if err != nil {
		return depositError(c, err)
	}

	verb := "verified"
	if req.Action == services.DepositActionReject {
		verb = "rejected"
	}

	return c.JSON(fiber.Map{
		"message": "Deposit " + verb + " successfully",
		"deposit": deposit,
	})
}

func AdminListBrokers(c *fiber.Ctx) error {
	var brokers []models.User
	if err := database.DB.
		Where("role = ?", models.RoleBroker).
		Preload("BrokerProfile").
		Order("created_at desc").
		Find(&brokers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch brokers"})
	}

	return c.JSON(brokers)
}

// ApproveBroker sets the admin vetting flag. It is independent of deposit
// activation: a broker needs both a verified deposit and admin approval before
// the marketplace treats them as fully onboarded.
func ApproveBroker(c *fiber.Ctx) error {
	brokerID := c.Params("brokerId")

	type Request struct {
		Approved bool `json:"approved"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result := database.DB.Model(&models.BrokerProfile{}).
		Where("user_id = ?", brokerID).
		Update("approved_by_admin", req.Approved)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update broker"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Broker profile not found"})
	}

	if req.Approved {
		var broker models.User
		if err := database.DB.First(&broker, "id = ?", brokerID).Error; err == nil {
			go notifications.SendEmail(
				broker.Name,
				broker.Email,
				"Your Broker Application has been Approved!",
				"<h1>Congratulations!</h1><p>Your broker application has been approved. Complete your activation deposit to make your listings publicly visible.</p>",
			)
		}
	}

	return c.JSON(fiber.Map{"message": "Broker approval updated successfully"})
}

type DashboardStatsResponse struct {
	TotalBrokers    int64            `json:"total_brokers"`
	PendingBrokers  int64            `json:"pending_brokers"`
	ActiveBrokers   int64            `json:"active_brokers"`
	TotalProperties int64            `json:"total_properties"`
	ActiveProperties int64           `json:"active_properties"`
	PendingDeposits int64            `json:"pending_deposits"`
	TotalDeposits   int64            `json:"total_deposits"`
	TotalRevenue    float64          `json:"total_revenue"`
	RecentDeposits  []models.Deposit `json:"recent_deposits"`
}

func GetDashboardStats(c *fiber.Ctx) error {
	var response DashboardStatsResponse

	database.DB.Model(&models.User{}).Where("role = ?", models.RoleBroker).Count(&response.TotalBrokers)
	database.DB.Model(&models.BrokerProfile{}).Where("approved_by_admin = ?", false).Count(&response.PendingBrokers)
	database.DB.Model(&models.BrokerProfile{}).Where("approved_by_admin = ? AND active = ?", true, true).Count(&response.ActiveBrokers)
	database.DB.Model(&models.Property{}).Count(&response.TotalProperties)
	database.DB.Model(&models.Property{}).Where("status = ?", models.PropertyActive).Count(&response.ActiveProperties)
	database.DB.Model(&models.Deposit{}).Where("status = ?", models.DepositPending).Count(&response.PendingDeposits)
	database.DB.Model(&models.Deposit{}).Count(&response.TotalDeposits)

	var totalRevenue float64
	database.DB.Model(&models.Deposit{}).
		Where("status = ?", models.DepositPaid).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&totalRevenue)
	response.TotalRevenue = totalRevenue

	database.DB.
		Where("status = ?", models.DepositPending).
		Order("created_at desc").
		Limit(5).
		Preload("Broker").
		Find(&response.RecentDeposits)

	return c.JSON(response)
}

func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := strings.TrimSpace(c.Query("search"))
	offset := (page - 1) * limit

	var users []models.User
	var totalUsers int64

	query := database.DB.Model(&models.User{})
	countQuery := database.DB.Model(&models.User{})

	if search != "" {
		searchTerm := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
		countQuery = countQuery.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", searchTerm, searchTerm)
	}

	countQuery.Count(&totalUsers)
	query.Order("created_at desc").Offset(offset).Limit(limit).Find(&users)

	return c.JSON(fiber.Map{
		"data": users,
		"meta": fiber.Map{
			"total_users":  totalUsers,
			"total_pages":  int(math.Ceil(float64(totalUsers) / float64(limit))),
			"current_page": page,
		},
	})
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")
	type Request struct {
		IsActive bool `json:"is_active"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	result := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("is_active", req.IsActive)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"message": "User status updated successfully."})
}
