package models_test

import (
	"github.com/fintrackr/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestReceiptOwnerRequired() {
	err := models.DB.Create(&models.Receipt{
		Filename: "invoice.jpg",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrReceiptOwnerRequired)
}

func (suite *TestSuiteStandard) TestReceiptStoresRawExtraction() {
	raw := []byte(`{"TotalAmount": 120.50, "VendorName": "Chai Shack"}`)

	receipt := suite.createTestReceipt(models.Receipt{
		Filename:      "invoice.jpg",
		ContentType:   "image/jpeg",
		RawExtraction: raw,
	})

	var reloaded models.Receipt
	assert.Nil(suite.T(), models.DB.First(&reloaded, receipt.ID).Error)

	// stored verbatim
	assert.Equal(suite.T(), raw, reloaded.RawExtraction)
}

func (suite *TestSuiteStandard) TestResourceNotFound() {
	var budget models.Budget
	err := models.DB.First(&budget, "id = ?", "3b276041-e9ab-4635-a51a-6bd6e94db9fe").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "budget")
}
