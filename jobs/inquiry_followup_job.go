package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/nahomt24/addis_estates/database"
	"github.com/nahomt24/addis_estates/models"
	"github.com/nahomt24/addis_estates/notifications"
)

// RemindOpenInquiries emails each broker a digest of customer inquiries that
// have gone unanswered for two days.
func RemindOpenInquiries() {
	log.Println("Running job: RemindOpenInquiries...")

	cutoff := time.Now().Add(-48 * time.Hour)

	type brokerDigest struct {
		BrokerID uint
		Name     string
		Email    string
		Count    int64
	}

	var digests []brokerDigest
	err := database.DB.Model(&models.Inquiry{}).
		Select("properties.broker_id as broker_id, users.name as name, users.email as email, COUNT(inquiries.id) as count").
		Joins("JOIN properties ON properties.id = inquiries.property_id").
		Joins("JOIN users ON users.id = properties.broker_id").
		Where("inquiries.status = ? AND inquiries.created_at < ?", models.InquiryOpen, cutoff).
		Group("properties.broker_id, users.name, users.email").
		Scan(&digests).Error
	if err != nil {
		log.Printf("Error building open inquiry digest: %v", err)
		return
	}

	for _, digest := range digests {
		body := fmt.Sprintf("<h1>Unanswered Inquiries</h1><p>Hello %s,</p><p>You have %d customer inquiries that have been waiting for more than 48 hours. Responding quickly keeps your listings competitive.</p>", digest.Name, digest.Count)
		go notifications.SendEmail(digest.Name, digest.Email, "You Have Unanswered Inquiries", body)
	}
}
