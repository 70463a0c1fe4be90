package models_test

import (
	"strings"

	"github.com/fintrackr/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	name := " Monthly groceries  "
	category := "  Groceries \t"

	budget := suite.createTestBudget(models.Budget{
		Name:      name,
		Category:  category,
		Allocated: decimal.NewFromInt(500),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), budget.Name)
	assert.Equal(suite.T(), strings.TrimSpace(category), budget.Category)
}

func (suite *TestSuiteStandard) TestBudgetCategoryRequired() {
	err := models.DB.Create(&models.Budget{
		OwnerID:   "test-owner",
		Allocated: decimal.NewFromInt(100),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetCategoryRequired)
}

func (suite *TestSuiteStandard) TestBudgetAllocatedNegative() {
	err := models.DB.Create(&models.Budget{
		OwnerID:   "test-owner",
		Category:  "Food",
		Allocated: decimal.NewFromInt(-1),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAllocatedNegative)
}

func (suite *TestSuiteStandard) TestBudgetCategoryUniquePerOwner() {
	_ = suite.createTestBudget(models.Budget{Category: "Food", Allocated: decimal.NewFromInt(100)})

	err := models.DB.Create(&models.Budget{
		OwnerID:   "test-owner",
		Category:  "Food",
		Allocated: decimal.NewFromInt(200),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetCategoryNotUnique)

	// The same category for another owner is fine
	err = models.DB.Create(&models.Budget{
		OwnerID:   "another-owner",
		Category:  "Food",
		Allocated: decimal.NewFromInt(200),
	}).Error
	assert.Nil(suite.T(), err)
}
