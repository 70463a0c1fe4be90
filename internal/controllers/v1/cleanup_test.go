package v1_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	v1 "github.com/fintrackr/backend/internal/controllers/v1"
	"github.com/fintrackr/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Allocated: decimal.NewFromInt(100)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(17)})
	_ = createTestReceipt(suite.T(), json.RawMessage(`{"TotalAmount": "10"}`))

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm="+url.QueryEscape("yes please delete all my data"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify that all resources are gone
	tests := []string{"budgets", "transactions"}
	for _, path := range tests {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, 0)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupNotConfirmed() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Allocated: decimal.NewFromInt(100)})

	tests := []struct {
		name  string
		query string
	}{
		{"No confirmation", ""},
		{"Wrong confirmation", "?confirm=yes"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, "http://example.com/v1"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			// Nothing was deleted
			r = test.Request(t, http.MethodGet, budget.Data.Links.Self, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm="+url.QueryEscape("yes please delete all my data"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
