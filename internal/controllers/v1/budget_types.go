package v1

import (
	"fmt"

	"github.com/fintrackr/backend/internal/ledger"
	"github.com/fintrackr/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	OwnerID   string          `json:"owner" example:"y4F2pYmVXcQ1Zl8K" default:""`                                  // UID of the owner
	Name      string          `json:"name" example:"Monthly groceries" default:""`                                  // Name of the budget
	Category  string          `json:"category" example:"Food"`                                                      // The category the budget caps, matched against transaction categories
	Allocated decimal.Decimal `json:"allocated" example:"500" minimum:"0" multipleOf:"0.00000001" default:"0"` // The spending ceiling for the category
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		OwnerID:   editable.OwnerID,
		Name:      editable.Name,
		Category:  editable.Category,
		Allocated: editable.Allocated,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                 // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?owner=y4F2pYmVXcQ1Zl8K&category=Food"` // The transactions counting against this budget
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`

	// These fields are computed from the owner's transactions on every
	// read. They are never stored, see the models package.
	Spent       decimal.Decimal `json:"spent" example:"200"`     // Sum of outgoing transactions in the budget's category
	Remaining   decimal.Decimal `json:"remaining" example:"300"` // Allocated minus spent, clamped at zero
	PercentUsed int             `json:"percentUsed" example:"40"` // Rounded percentage of the allocation used. May exceed 100 on overspend.
}

// newBudget computes the API v1 representation of the resource, deriving
// the usage numbers from the owner's current transactions.
func newBudget(c *gin.Context, db *gorm.DB, model models.Budget) (Budget, error) {
	url := c.GetString(string(models.DBContextURL))

	var transactions []models.Transaction
	err := db.Where(&models.Transaction{OwnerID: model.OwnerID}).Find(&transactions).Error
	if err != nil {
		return Budget{}, err
	}

	usage := ledger.BudgetUsage(model.Allocated, model.Category, models.Records(transactions))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			OwnerID:   model.OwnerID,
			Name:      model.Name,
			Category:  model.Category,
			Allocated: model.Allocated,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?owner=%s&category=%s", url, model.OwnerID, model.Category),
		},
		Spent:       usage.Spent,
		Remaining:   usage.Remaining,
		PercentUsed: usage.PercentUsed,
	}, nil
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created Budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The Budget data, if creation was successful
}

type BudgetQueryFilter struct {
	OwnerID  string `form:"owner"`                      // By owner UID
	Name     string `form:"name" filterField:"false"`   // By name
	Category string `form:"category"`                   // By exact category
	Search   string `form:"search" filterField:"false"` // By string in name or category
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		OwnerID:  f.OwnerID,
		Category: f.Category,
	}
}
