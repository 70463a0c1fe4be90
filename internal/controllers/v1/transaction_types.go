package v1

import (
	"fmt"
	"time"

	"github.com/fintrackr/backend/internal/ledger"
	"github.com/fintrackr/backend/internal/models"
	ft_uuid "github.com/fintrackr/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	OwnerID string    `json:"owner" example:"y4F2pYmVXcQ1Zl8K" default:""`   // UID of the owner
	Date    time.Time `json:"date" example:"2026-01-30T18:43:00.271152Z"`    // Date of the transaction. Defaults to the current time when unset.

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount, always non-negative. The direction carries the sign.

	Direction   ledger.Direction `json:"direction" example:"outgoing" default:"outgoing"`         // Whether money entered or left the account
	Category    string           `json:"category" example:"Food" default:"Uncategorized"`         // Expense category, also the budget matching key
	Description string           `json:"description" example:"Lunch at the chai shack" default:""` // A note about the transaction
	ReceiptID   *uuid.UUID       `json:"receiptId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the receipt this transaction was extracted from
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		OwnerID:     editable.OwnerID,
		Date:        editable.Date,
		Amount:      editable.Amount,
		Direction:   editable.Direction,
		Category:    editable.Category,
		Description: editable.Description,
		ReceiptID:   editable.ReceiptID,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`    // The transaction itself
	Receipt string `json:"receipt" example:"https://example.com/api/v1/receipts/370cc063-d2d6-4b49-a3e3-90bd74b04e29"` // The receipt the transaction was extracted from, if any
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			OwnerID:     model.OwnerID,
			Date:        model.Date,
			Amount:      model.Amount,
			Direction:   model.Direction,
			Category:    model.Category,
			Description: model.Description,
			ReceiptID:   model.ReceiptID,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.ReceiptID != nil {
		transaction.Links.Receipt = fmt.Sprintf("%s/v1/receipts/%s", url, model.ReceiptID)
	}

	return transaction
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	OwnerID           string          `form:"owner"`                                      // By owner UID
	Category          string          `form:"category"`                                   // By exact category
	CategoryMatch     string          `form:"categoryMatch" filterField:"false"`          // By category glob pattern, e.g. "Groc*"
	Direction         string          `form:"direction" filterField:"false"`              // By direction of the transaction
	Date              time.Time       `form:"date" filterField:"false"`                   // Exact date. Time is ignored.
	FromDate          time.Time       `form:"fromDate" filterField:"false"`               // From this date. Time is ignored.
	UntilDate         time.Time       `form:"untilDate" filterField:"false"`              // Until this date. Time is ignored.
	Amount            decimal.Decimal `form:"amount"`                                     // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"`      // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"`      // Amount more than or equal to this
	ReceiptID         ft_uuid.UUID    `form:"receipt" filterField:"false"`                // By ID of the receipt the transaction was extracted from
	Search            string          `form:"search" filterField:"false"`                 // Search for this text in the description
	Offset            uint            `form:"offset" filterField:"false"`                 // The offset of the first Transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`                  // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		OwnerID:  f.OwnerID,
		Category: f.Category,
		Amount:   f.Amount,
	}
}
