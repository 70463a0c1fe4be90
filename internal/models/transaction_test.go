package models_test

import (
	"strings"
	"time"

	"github.com/fintrackr/backend/internal/ledger"
	"github.com/fintrackr/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	category := " Groceries  "
	description := "  Weekly shopping \t"

	transaction := suite.createTestTransaction(models.Transaction{
		Amount:      decimal.NewFromFloat(17.23),
		Category:    category,
		Description: description,
	})

	assert.Equal(suite.T(), strings.TrimSpace(category), transaction.Category)
	assert.Equal(suite.T(), strings.TrimSpace(description), transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(10),
	})

	assert.Equal(suite.T(), ledger.DirectionOutgoing, transaction.Direction)
	assert.Equal(suite.T(), ledger.DefaultCategory, transaction.Category)
	assert.False(suite.T(), transaction.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionNegativeAmount() {
	err := models.DB.Create(&models.Transaction{
		OwnerID: "test-owner",
		Amount:  decimal.NewFromInt(-100),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionInvalidDirection() {
	err := models.DB.Create(&models.Transaction{
		OwnerID:   "test-owner",
		Amount:    decimal.NewFromInt(100),
		Direction: "sideways",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrDirectionInvalid)
}

func (suite *TestSuiteStandard) TestTransactionNilReceiptID() {
	nilID := uuid.Nil
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:    decimal.NewFromInt(5),
		ReceiptID: &nilID,
	})

	assert.Nil(suite.T(), transaction.ReceiptID)
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	tz := time.FixedZone("PKT", 5*60*60)

	transaction := suite.createTestTransaction(models.Transaction{
		Amount: decimal.NewFromInt(5),
		Date:   time.Date(2026, 8, 25, 9, 0, 0, 0, tz),
	})

	var reloaded models.Transaction
	assert.Nil(suite.T(), models.DB.First(&reloaded, transaction.ID).Error)
	assert.Equal(suite.T(), time.UTC, reloaded.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionRecord() {
	transaction := suite.createTestTransaction(models.Transaction{
		Amount:      decimal.NewFromInt(75),
		Category:    "Food",
		Description: "Chai",
		Date:        time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
	})

	record := transaction.Record()

	assert.Equal(suite.T(), transaction.ID.String(), record.ID)
	assert.Equal(suite.T(), "Food", record.Category)
	assert.True(suite.T(), record.Amount.Equal(decimal.NewFromInt(75)))
	assert.Equal(suite.T(), ledger.DirectionOutgoing, record.Direction)
}

func (suite *TestSuiteStandard) TestRecords() {
	_ = suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(1)})
	_ = suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(2)})

	var transactions []models.Transaction
	assert.Nil(suite.T(), models.DB.Find(&transactions).Error)

	records := models.Records(transactions)
	assert.Len(suite.T(), records, 2)
}
