package v1

import (
	"github.com/fintrackr/backend/internal/ledger"
	"github.com/fintrackr/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardQuery contains the parameters shared by all dashboard endpoints.
type DashboardQuery struct {
	OwnerID  string `form:"owner"`    // UID of the owner. Required.
	Currency string `form:"currency"` // Display prefix for formatted amounts. Defaults to "Rs.".
	Limit    int    `form:"limit"`    // Maximum number of entries for /recent. Defaults to 4.
}

// prefix returns the display prefix to use for formatted amounts.
func (q DashboardQuery) prefix() string {
	if q.Currency == "" {
		return ledger.DefaultCurrencyPrefix
	}

	return q.Currency
}

// CategorySlice is one slice of the expense pie chart.
type CategorySlice struct {
	Category string          `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"175"`
	Count    int             `json:"count" example:"2"`
}

type DashboardCategoriesResponse struct {
	Data  []CategorySlice `json:"data"`                                          // Expense totals per category, outgoing only
	Error *string         `json:"error" example:"the owner parameter must be set"` // The error, if any occurred
}

// MonthBucket is one bar group of the monthly chart.
type MonthBucket struct {
	Month    types.Month     `json:"month" example:"2026-07"`
	Outgoing decimal.Decimal `json:"outgoing" example:"540.50"`
	Incoming decimal.Decimal `json:"incoming" example:"1200"`
}

type DashboardMonthsResponse struct {
	Data  []MonthBucket `json:"data"`                                            // Totals per calendar month, both directions
	Error *string       `json:"error" example:"the owner parameter must be set"` // The error, if any occurred
}

// RecentTransaction is the view model for one row of the recent
// transactions card: everything is already formatted for display.
type RecentTransaction struct {
	ID          uuid.UUID `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	Amount      string    `json:"amount" example:"-Rs.175.00"`  // Signed, formatted amount
	Category    string    `json:"category" example:"Food"`
	Description string    `json:"description" example:"Chai, Samosa"` // Truncated to the display budget
	DateLabel   string    `json:"dateLabel" example:"Yesterday"`      // Relative date label
}

type DashboardRecentResponse struct {
	Data  []RecentTransaction `json:"data"`                                            // The most recent transactions, formatted
	More  int                 `json:"more" example:"3"`                                // Number of transactions that did not fit the card
	Error *string             `json:"error" example:"the owner parameter must be set"` // The error, if any occurred
}

// BudgetProgress is the view model for one budget card.
type BudgetProgress struct {
	ID          uuid.UUID       `json:"id" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	Name        string          `json:"name" example:"Monthly groceries"`
	Category    string          `json:"category" example:"Food"`
	Allocated   decimal.Decimal `json:"allocated" example:"500"`
	Spent       decimal.Decimal `json:"spent" example:"200"`
	Remaining   decimal.Decimal `json:"remaining" example:"300"`
	PercentUsed int             `json:"percentUsed" example:"40"`          // Unbounded, exceeds 100 on overspend
	SpentLabel  string          `json:"spentLabel" example:"Rs.200.00 spent"`
	LeftLabel   string          `json:"leftLabel" example:"Rs.300.00 left"`
	Percent     string          `json:"percent" example:"40%"` // Display percentage, clamped to [0, 100]
}

type DashboardBudgetsResponse struct {
	Data  []BudgetProgress `json:"data"`                                            // Budget progress cards
	Error *string          `json:"error" example:"the owner parameter must be set"` // The error, if any occurred
}
