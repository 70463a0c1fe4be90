package v1

import (
	"net/http"
	"sort"
	"time"

	"github.com/fintrackr/backend/internal/httputil"
	"github.com/fintrackr/backend/internal/ledger"
	"github.com/fintrackr/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
//
// All dashboard endpoints are read-only: they fetch the owner's rows,
// convert them to ledger records and delegate every computation to the
// ledger package.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", GetDashboardCategories)

	r.OPTIONS("/months", httputil.OptionsGet)
	r.GET("/months", GetDashboardMonths)

	r.OPTIONS("/recent", httputil.OptionsGet)
	r.GET("/recent", GetDashboardRecent)

	r.OPTIONS("/budgets", httputil.OptionsGet)
	r.GET("/budgets", GetDashboardBudgets)
}

// ownerRecords binds the dashboard query, enforces the owner parameter and
// returns the owner's transactions as ledger records. When it returns
// false, the error response has already been written.
func ownerRecords(c *gin.Context) (DashboardQuery, []ledger.Record, bool) {
	var query DashboardQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&query)

	if query.OwnerID == "" {
		s := errOwnerRequired.Error()
		c.JSON(http.StatusBadRequest, httpError{
			Error: s,
		})
		return query, nil, false
	}

	var transactions []models.Transaction
	err := models.DB.Where(&models.Transaction{OwnerID: query.OwnerID}).Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return query, nil, false
	}

	return query, models.Records(transactions), true
}

// @Summary		Expenses by category
// @Description	Returns the expense total and transaction count per category, for the pie chart. Incoming transactions are excluded.
// @Tags			Dashboard
// @Produce		json
// @Success		200			{object}	DashboardCategoriesResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			owner		query		string	true	"UID of the owner"
// @Router			/v1/dashboard/categories [get]
func GetDashboardCategories(c *gin.Context) {
	_, records, ok := ownerRecords(c)
	if !ok {
		return
	}

	totals := ledger.ByCategory(records)

	data := make([]CategorySlice, 0, len(totals))
	for category, total := range totals {
		data = append(data, CategorySlice{
			Category: category,
			Total:    total.Total,
			Count:    total.Count,
		})
	}

	// Biggest slice first, name breaks ties to keep the order stable
	sort.Slice(data, func(i, j int) bool {
		if !data[i].Total.Equal(data[j].Total) {
			return data[i].Total.GreaterThan(data[j].Total)
		}
		return data[i].Category < data[j].Category
	})

	c.JSON(http.StatusOK, DashboardCategoriesResponse{Data: data})
}

// @Summary		Totals by month
// @Description	Returns the outgoing and incoming totals per calendar month, for the bar chart.
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardMonthsResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	query		string	true	"UID of the owner"
// @Router			/v1/dashboard/months [get]
func GetDashboardMonths(c *gin.Context) {
	_, records, ok := ownerRecords(c)
	if !ok {
		return
	}

	totals := ledger.ByMonth(records)

	data := make([]MonthBucket, 0, len(totals))
	for month, total := range totals {
		data = append(data, MonthBucket{
			Month:    month,
			Outgoing: total.Outgoing,
			Incoming: total.Incoming,
		})
	}

	// Chronological order
	sort.Slice(data, func(i, j int) bool {
		return data[i].Month.Before(data[j].Month)
	})

	c.JSON(http.StatusOK, DashboardMonthsResponse{Data: data})
}

// @Summary		Recent transactions
// @Description	Returns the most recent transactions as formatted view models, plus the count of transactions that did not fit.
// @Tags			Dashboard
// @Produce		json
// @Success		200			{object}	DashboardRecentResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			owner		query		string	true	"UID of the owner"
// @Param			currency	query		string	false	"Display prefix for amounts. Defaults to Rs."
// @Param			limit		query		int		false	"Maximum number of transactions to return. Defaults to 4."
// @Router			/v1/dashboard/recent [get]
func GetDashboardRecent(c *gin.Context) {
	query, records, ok := ownerRecords(c)
	if !ok {
		return
	}

	selection := ledger.SelectRecent(records, query.Limit)
	now := time.Now().In(time.UTC)

	data := make([]RecentTransaction, 0, len(selection.Shown))
	for _, record := range selection.Shown {
		id, _ := uuid.Parse(record.ID)

		data = append(data, RecentTransaction{
			ID:          id,
			Amount:      ledger.Signed(record.Amount, record.Direction, query.prefix()),
			Category:    record.Category,
			Description: ledger.Description(record.Description),
			DateLabel:   ledger.RelativeLabel(record.Date, now),
		})
	}

	c.JSON(http.StatusOK, DashboardRecentResponse{
		Data: data,
		More: selection.OverflowCount,
	})
}

// @Summary		Budget progress
// @Description	Returns the owner's budgets with their current usage and the formatted card labels.
// @Tags			Dashboard
// @Produce		json
// @Success		200			{object}	DashboardBudgetsResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			owner		query		string	true	"UID of the owner"
// @Param			currency	query		string	false	"Display prefix for amounts. Defaults to Rs."
// @Router			/v1/dashboard/budgets [get]
func GetDashboardBudgets(c *gin.Context) {
	query, records, ok := ownerRecords(c)
	if !ok {
		return
	}

	var budgets []models.Budget
	err := models.DB.
		Order("name ASC").
		Where(&models.Budget{OwnerID: query.OwnerID}).
		Find(&budgets).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	data := make([]BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		usage := ledger.BudgetUsage(budget.Allocated, budget.Category, records)

		data = append(data, BudgetProgress{
			ID:          budget.ID,
			Name:        budget.Name,
			Category:    budget.Category,
			Allocated:   budget.Allocated,
			Spent:       usage.Spent,
			Remaining:   usage.Remaining,
			PercentUsed: usage.PercentUsed,
			SpentLabel:  ledger.SpentLabel(usage.Spent, query.prefix()),
			LeftLabel:   ledger.LeftLabel(usage.Remaining, query.prefix()),
			Percent:     ledger.Percent(usage.PercentUsed),
		})
	}

	c.JSON(http.StatusOK, DashboardBudgetsResponse{Data: data})
}
