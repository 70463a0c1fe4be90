package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending ceiling for one category.
//
// Spent, remaining and percent-used are never stored. They are recomputed
// from the owner's transactions on every read so that a stale stored value
// can not contradict the transaction list.
type Budget struct {
	DefaultModel
	OwnerID   string `gorm:"index;uniqueIndex:budget_owner_category"` // UID of the owner, issued by the identity provider
	Name      string
	Category  string          `gorm:"uniqueIndex:budget_owner_category"` // matched against Transaction.Category by exact string equality
	Allocated decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave validates the budget and trims whitespace from string fields.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Category = strings.TrimSpace(b.Category)

	if b.Category == "" {
		return ErrBudgetCategoryRequired
	}

	if b.Allocated.IsNegative() {
		return ErrAllocatedNegative
	}

	return nil
}
