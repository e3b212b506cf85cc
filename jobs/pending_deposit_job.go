package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
	"github.com/nahomt24/addis_estates/notifications"
)

// RemindPendingDeposits nudges administrators about deposits that have been
// waiting for review for more than a day.
func RemindPendingDeposits() {
	log.Println("Running job: RemindPendingDeposits...")

	cutoff := time.Now().Add(-24 * time.Hour)

	var pending []models.Deposit
	err := database.DB.
		Preload("Broker").
		Where("status = ? AND created_at < ?", models.DepositPending, cutoff).
		Order("created_at asc").
		Find(&pending).Error
	if err != nil {
		log.Printf("Error checking for stale pending deposits: %v", err)
		return
	}

	if len(pending) == 0 {
		return
	}

	var admins []models.User
	if err := database.DB.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		log.Printf("Error loading admins for deposit reminder: %v", err)
		return
	}

	body := fmt.Sprintf("<h1>Deposits Awaiting Review</h1><p>There are %d activation deposits pending verification for more than 24 hours. The oldest was submitted on %s by %s.</p>",
		len(pending),
		pending[0].CreatedAt.Format("January 2, 2006"),
		pending[0].Broker.Name,
	)

	for _, admin := range admins {
		go notifications.SendEmail(admin.Name, admin.Email, "Pending Deposits Need Review", body)
	}
}
