package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fintrackr/backend/internal/controllers/v1"
	"github.com/fintrackr/backend/internal/ledger"
	"github.com/fintrackr/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboardOptions() {
	paths := []string{"categories", "months", "recent", "budgets"}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/dashboard/%s", path), "")
			assert.Equal(t, http.StatusNoContent, r.Code)
			assert.Equal(t, "GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestDashboardOwnerRequired() {
	paths := []string{"categories", "months", "recent", "budgets"}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/dashboard/%s", path), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "the owner parameter must be set", response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestDashboardCategories() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(100), Category: "Food"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(75), Category: "Food"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(50), Category: "Travel"})

	// Excluded: incoming direction and a different owner
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(1000), Category: "Salary", Direction: ledger.DirectionIncoming})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{OwnerID: "someone-else", Amount: decimal.NewFromInt(30), Category: "Food"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/categories?owner=test-owner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardCategoriesResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)

	// Biggest slice first
	assert.Equal(suite.T(), "Food", response.Data[0].Category)
	assert.True(suite.T(), decimal.NewFromInt(175).Equal(response.Data[0].Total), "Total is %s", response.Data[0].Total)
	assert.Equal(suite.T(), 2, response.Data[0].Count)

	assert.Equal(suite.T(), "Travel", response.Data[1].Category)
	assert.True(suite.T(), decimal.NewFromInt(50).Equal(response.Data[1].Total))
	assert.Equal(suite.T(), 1, response.Data[1].Count)
}

func (suite *TestSuiteStandard) TestDashboardMonths() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(100),
		Date:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(50),
		Date:   time.Date(2026, 7, 28, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:    decimal.NewFromInt(1200),
		Direction: ledger.DirectionIncoming,
		Date:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/months?owner=test-owner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardMonthsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)

	// Chronological order
	assert.Equal(suite.T(), "2026-07", response.Data[0].Month.String())
	assert.True(suite.T(), decimal.NewFromInt(150).Equal(response.Data[0].Outgoing), "Outgoing is %s", response.Data[0].Outgoing)
	assert.True(suite.T(), response.Data[0].Incoming.IsZero())

	assert.Equal(suite.T(), "2026-08", response.Data[1].Month.String())
	assert.True(suite.T(), response.Data[1].Outgoing.IsZero())
	assert.True(suite.T(), decimal.NewFromInt(1200).Equal(response.Data[1].Incoming))
}

func (suite *TestSuiteStandard) TestDashboardRecent() {
	now := time.Now().In(time.UTC)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      decimal.NewFromInt(175),
		Category:    "Food",
		Description: "Chai, Samosa",
		Date:        now,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:      decimal.NewFromInt(50),
		Category:    "Travel",
		Description: "A very long description that does not fit the card",
		Date:        now.AddDate(0, 0, -1),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:    decimal.NewFromInt(1200),
		Category:  "Salary",
		Direction: ledger.DirectionIncoming,
		Date:      now.AddDate(0, 0, -3),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/recent?owner=test-owner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardRecentResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), 0, response.More)

	// Most recent first, everything formatted for display
	assert.Equal(suite.T(), "-Rs.175.00", response.Data[0].Amount)
	assert.Equal(suite.T(), "Chai, Samosa", response.Data[0].Description)
	assert.Equal(suite.T(), "Today", response.Data[0].DateLabel)

	assert.Equal(suite.T(), "-Rs.50.00", response.Data[1].Amount)
	assert.Equal(suite.T(), "A very long descript...", response.Data[1].Description)
	assert.Equal(suite.T(), "Yesterday", response.Data[1].DateLabel)

	assert.Equal(suite.T(), "+Rs.1200.00", response.Data[2].Amount)
	assert.Equal(suite.T(), "3 days ago", response.Data[2].DateLabel)
}

func (suite *TestSuiteStandard) TestDashboardRecentOverflow() {
	now := time.Now().In(time.UTC)

	for i := 0; i < 6; i++ {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			Amount: decimal.NewFromInt(int64(i + 1)),
			Date:   now.AddDate(0, 0, -i),
		})
	}

	// The default limit is 4
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/recent?owner=test-owner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardRecentResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 4)
	assert.Equal(suite.T(), 2, response.More)

	// An explicit limit overrides the default
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/recent?owner=test-owner&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), 4, response.More)
}

func (suite *TestSuiteStandard) TestDashboardRecentEmptyDescription() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/recent?owner=test-owner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardRecentResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "No description", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestDashboardRecentCurrency() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/recent?owner=test-owner&currency=%E2%82%AC", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardRecentResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "-€10.00", response.Data[0].Amount)
}

func (suite *TestSuiteStandard) TestDashboardBudgets() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Name:      "Monthly groceries",
		Category:  "Food",
		Allocated: decimal.NewFromInt(500),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(200), Category: "Food"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/budgets?owner=test-owner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardBudgetsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	card := response.Data[0]

	assert.Equal(suite.T(), "Monthly groceries", card.Name)
	assert.True(suite.T(), decimal.NewFromInt(200).Equal(card.Spent), "Spent is %s", card.Spent)
	assert.True(suite.T(), decimal.NewFromInt(300).Equal(card.Remaining), "Remaining is %s", card.Remaining)
	assert.Equal(suite.T(), 40, card.PercentUsed)
	assert.Equal(suite.T(), "Rs.200.00 spent", card.SpentLabel)
	assert.Equal(suite.T(), "Rs.300.00 left", card.LeftLabel)
	assert.Equal(suite.T(), "40%", card.Percent)
}

func (suite *TestSuiteStandard) TestDashboardBudgetsOverspent() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Category:  "Food",
		Allocated: decimal.NewFromInt(100),
	})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(150), Category: "Food"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/budgets?owner=test-owner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardBudgetsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)

	// The raw value keeps the overspend, the display value clamps
	assert.Equal(suite.T(), 150, response.Data[0].PercentUsed)
	assert.Equal(suite.T(), "100%", response.Data[0].Percent)
	assert.Equal(suite.T(), "Rs.0.00 left", response.Data[0].LeftLabel)
}

func (suite *TestSuiteStandard) TestDashboardDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard/categories?owner=test-owner", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
