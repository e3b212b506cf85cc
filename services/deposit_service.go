package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nahomt24/addis_estates/models"
	"github.com/nahomt24/addis_estates/notifications"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Identity is the authenticated actor an operation runs on behalf of. Handlers
// build it from the verified JWT; the workflow never reads ambient session
// state.
type Identity struct {
	UserID uint
	Role   string
}

const (
	DepositActionVerify = "verify"
	DepositActionReject = "reject"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrDuplicateDeposit = errors.New("you already have a pending or completed deposit")
	ErrInvalidAction    = errors.New("invalid action")
	ErrDepositNotFound  = errors.New("deposit not found")
	ErrDepositResolved  = errors.New("deposit has already been resolved")
)

// DepositClaim carries the broker's bank-transfer details. Everything except
// the amount is opaque to the workflow and only read by the reviewing admin.
type DepositClaim struct {
	Amount        decimal.Decimal
	Currency      string
	BankName      string
	AccountNumber string
	TransactionID string
	BankReference string
	ReceiptURL    string
}

// SubmitDeposit records a broker's activation-fee claim as a PENDING deposit.
// The check and the insert run in one transaction; the partial unique index on
// deposits backstops concurrent submissions from the same broker.
func SubmitDeposit(db *gorm.DB, caller Identity, claim DepositClaim) (*models.Deposit, error) {
	if caller.Role != models.RoleBroker {
		return nil, ErrUnauthorized
	}

	deposit := models.Deposit{
		BrokerID:      caller.UserID,
		Amount:        claim.Amount,
		Currency:      claim.Currency,
		BankName:      claim.BankName,
		AccountNumber: claim.AccountNumber,
		TransactionID: claim.TransactionID,
		BankReference: claim.BankReference,
		ReceiptURL:    claim.ReceiptURL,
		PaymentMethod: models.DepositPaymentMethod,
		Status:        models.DepositPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var outstanding int64
		if err := tx.Model(&models.Deposit{}).
			Where("broker_id = ? AND status IN ?", caller.UserID, []string{models.DepositPending, models.DepositPaid}).
			Count(&outstanding).Error; err != nil {
			return err
		}
		if outstanding > 0 {
			return ErrDuplicateDeposit
		}

		if err := tx.Create(&deposit).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateDeposit
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &deposit, nil
}

// ResolveDeposit applies the admin verify/reject transition on a PENDING
// deposit. On verify the broker profile is activated in the same transaction,
// so the deposit and profile updates commit together or not at all. A deposit
// that already reached PAID or FAILED is never mutated again.
func ResolveDeposit(db *gorm.DB, caller Identity, depositID uint, action string, adminNotes string) (*models.Deposit, error) {
	if caller.Role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}
	if action != DepositActionVerify && action != DepositActionReject {
		return nil, ErrInvalidAction
	}

	newStatus := models.DepositPaid
	if action == DepositActionReject {
		newStatus = models.DepositFailed
	}

	var deposit models.Deposit
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deposit, "id = ?", depositID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepositNotFound
			}
			return err
		}
		if deposit.Status != models.DepositPending {
			return ErrDepositResolved
		}

		now := time.Now()
		result := tx.Model(&models.Deposit{}).
			Where("id = ? AND status = ?", depositID, models.DepositPending).
			Updates(map[string]interface{}{
				"status":      newStatus,
				"admin_notes": adminNotes,
				"verified_at": now,
				"verified_by": caller.UserID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Another admin resolved it between our read and write.
			return ErrDepositResolved
		}

		deposit.Status = newStatus
		deposit.AdminNotes = &adminNotes
		deposit.VerifiedAt = &now
		verifier := caller.UserID
		deposit.VerifiedBy = &verifier

		if action == DepositActionVerify {
			result := tx.Model(&models.BrokerProfile{}).
				Where("user_id = ?", deposit.BrokerID).
				Updates(map[string]interface{}{
					"deposit_status": models.ProfileDepositPaid,
					"active":         true,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("broker profile not found for user %d", deposit.BrokerID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go notifyDepositOutcome(db, deposit, action)
	if action == DepositActionVerify {
		go GenerateActivationCertificate(db, deposit.BrokerID)
	}

	return &deposit, nil
}

func notifyDepositOutcome(db *gorm.DB, deposit models.Deposit, action string) {
	var broker models.User
	if err := db.First(&broker, "id = ?", deposit.BrokerID).Error; err != nil {
		log.Printf("🔥 Failed to load broker %d for deposit notification: %v", deposit.BrokerID, err)
		return
	}

	if action == DepositActionVerify {
		notifications.SendEmail(
			broker.Name,
			broker.Email,
			"Your Broker Account is Now Active",
			fmt.Sprintf("<h1>Deposit Verified</h1><p>Hello %s,</p><p>Your activation deposit of %s %s has been verified. Your broker account is now active and your listings are publicly visible.</p>", broker.Name, deposit.Amount.StringFixed(2), deposit.Currency),
		)
		return
	}

	notifications.SendEmail(
		broker.Name,
		broker.Email,
		"Update on Your Activation Deposit",
		fmt.Sprintf("<h1>Deposit Rejected</h1><p>Hello %s,</p><p>We could not verify your activation deposit of %s %s. Please review the details below and submit a new deposit.</p><p><b>Admin Notes:</b> %s</p>", broker.Name, deposit.Amount.StringFixed(2), deposit.Currency, notesOrDash(deposit.AdminNotes)),
	)
}

func notesOrDash(notes *string) string {
	if notes == nil || *notes == "" {
		return "-"
	}
	return *notes
}
