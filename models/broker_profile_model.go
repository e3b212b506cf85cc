package models

import (
	"time"
)

// Deposit outcome as last known on the broker's profile. PENDING and PAID
// mirror the deposit lifecycle; UNPAID means no deposit has been submitted yet.
const (
	ProfileDepositUnpaid  = "UNPAID"
	ProfileDepositPending = "PENDING"
	ProfileDepositPaid    = "PAID"
)

type BrokerProfile struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UserID        uint    `gorm:"not null;unique" json:"user_id"`
	Phone         *string `gorm:"size:30" json:"phone"`
	CompanyName   *string `gorm:"size:255" json:"company_name"`
	LicenseNumber *string `gorm:"size:100" json:"license_number"`

	DepositStatus string `gorm:"size:20;not null;default:'UNPAID'" json:"deposit_status"`

	// Active gates public visibility of the broker's listings. Flipped true
	// only when an admin verifies the activation deposit.
	Active bool `gorm:"default:false" json:"active"`

	// ApprovedByAdmin is an independent vetting flag; the deposit workflow
	// never touches it.
	ApprovedByAdmin bool `gorm:"default:false" json:"approved_by_admin"`

	ActivationCertificateURL *string `gorm:"size:255" json:"activation_certificate_url"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
