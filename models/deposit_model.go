package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DepositPending = "PENDING"
	DepositPaid    = "PAID"
	DepositFailed  = "FAILED"
)

const DepositPaymentMethod = "BANK_TRANSFER"

// Deposit is one activation-fee submission attempt. A broker may accumulate
// FAILED rows over time but holds at most one PENDING or PAID row, enforced
// by a partial unique index on broker_id (see database.Migrate).
type Deposit struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	BrokerID uint            `gorm:"not null;index" json:"broker_id"`
	Amount   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency string          `gorm:"size:3;not null" json:"currency"`

	BankName      string `gorm:"size:255" json:"bank_name"`
	AccountNumber string `gorm:"size:100" json:"account_number"`
	TransactionID string `gorm:"size:255" json:"transaction_id"`
	BankReference string `gorm:"size:255" json:"bank_reference"`
	ReceiptURL    string `gorm:"size:255" json:"receipt_url"`

	PaymentMethod string `gorm:"size:30;not null" json:"payment_method"`
	Status        string `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	AdminNotes *string    `gorm:"type:text" json:"admin_notes"`
	VerifiedAt *time.Time `json:"verified_at"`
	VerifiedBy *uint      `json:"verified_by"`

	Broker   User  `gorm:"foreignKey:BrokerID" json:"broker,omitempty"`
	Verifier *User `gorm:"foreignKey:VerifiedBy" json:"verifier,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
