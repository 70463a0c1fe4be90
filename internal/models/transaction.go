package models

import (
	"strings"
	"time"

	"github.com/fintrackr/backend/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents money entering or leaving the tracked account.
//
// The amount is always a non-negative magnitude, the sign shown to users
// is derived from the direction.
type Transaction struct {
	DefaultModel
	OwnerID     string `gorm:"index"` // UID of the owner, issued by the identity provider
	Date        time.Time
	Amount      decimal.Decimal  `gorm:"type:DECIMAL(20,8)"`
	Direction   ledger.Direction `gorm:"default:outgoing"`
	Category    string           // vendor name or user-chosen category, free-form
	Description string
	ReceiptID   *uuid.UUID // set when the transaction was created from a receipt extraction
	Receipt     *Receipt   `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - enforces the non-negative amount invariant
//   - validates the direction token
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)

	if t.Category == "" {
		t.Category = ledger.DefaultCategory
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if t.Direction == "" {
		t.Direction = ledger.DirectionOutgoing
	} else if !t.Direction.Valid() {
		return ErrDirectionInvalid
	}

	// Ensure that the Receipt ID is nil and not a pointer to a nil UUID
	// when it is set
	if t.ReceiptID != nil && *t.ReceiptID == uuid.Nil {
		t.ReceiptID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// Record converts the transaction into the canonical shape the ledger
// pipeline operates on.
func (t Transaction) Record() ledger.Record {
	return ledger.Record{
		ID:          t.ID.String(),
		OwnerID:     t.OwnerID,
		Date:        t.Date,
		Amount:      t.Amount,
		Direction:   t.Direction,
		Category:    t.Category,
		Description: t.Description,
	}
}

// Records converts a transaction list for the ledger pipeline.
func Records(transactions []Transaction) []ledger.Record {
	records := make([]ledger.Record, 0, len(transactions))
	for _, transaction := range transactions {
		records = append(records, transaction.Record())
	}

	return records
}
