package v1_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fintrackr/backend/internal/controllers/v1"
	"github.com/fintrackr/backend/internal/extraction"
	"github.com/fintrackr/backend/internal/ledger"
	"github.com/fintrackr/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubParser returns a canned extraction instead of calling the model.
type stubParser struct {
	raw json.RawMessage
	err error
}

func (s stubParser) Parse(_ context.Context, _ []byte, _ string) (json.RawMessage, error) {
	return s.raw, s.err
}

// useParser swaps the extraction collaborator for the duration of a test.
func useParser(t *testing.T, p extraction.Parser) {
	previous := v1.ReceiptParser
	v1.ReceiptParser = p
	t.Cleanup(func() {
		v1.ReceiptParser = previous
	})
}

func createTestReceipt(t *testing.T, raw json.RawMessage, expectedStatus ...int) v1.ReceiptCreateResponse {
	useParser(t, stubParser{raw: raw})

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body, headers := test.MultipartFile(t, "receipt.jpg", "image/jpeg", []byte("not really a jpeg"), map[string]string{
		"owner": "test-owner",
	})

	r := test.Request(t, http.MethodPost, "http://example.com/v1/receipts", body, headers)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ReceiptCreateResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestReceiptsOptions() {
	receipt := createTestReceipt(suite.T(), json.RawMessage(`{"TotalAmount": "10"}`))

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "http://example.com/v1/receipts", http.StatusNoContent, "POST"},
		{"Detail", receipt.Data.Links.Self, http.StatusNoContent, "GET, DELETE"},
		{"Invalid UUID", "http://example.com/v1/receipts/not-a-uuid", http.StatusBadRequest, ""},
		{"Nonexistent", fmt.Sprintf("http://example.com/v1/receipts/%s", uuid.New()), http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			assert.Equal(t, tt.status, r.Code)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestReceiptCreate() {
	raw := json.RawMessage(`{
		"InvoiceNumber": "INV-2391",
		"VendorName": "Al-Madina Superstore",
		"TotalAmount": "1250.50",
		"InvoiceDate": "2026-08-15",
		"Items": [
			{"ItemName": "Rice 5kg", "Price": "850", "Quantity": 1},
			{"ItemName": "Cooking oil", "Price": "400.50", "Quantity": 1}
		],
		"InvoiceType": "outgoing"
	}`)

	response := createTestReceipt(suite.T(), raw)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "test-owner", response.Data.OwnerID)
	assert.Equal(suite.T(), "receipt.jpg", response.Data.Filename)
	assert.Equal(suite.T(), "image/jpeg", response.Data.ContentType)
	assert.JSONEq(suite.T(), string(raw), string(response.Data.Extraction))

	// The transaction is derived from the extraction
	require.NotNil(suite.T(), response.Transaction)
	assert.Equal(suite.T(), "test-owner", response.Transaction.OwnerID)
	assert.Equal(suite.T(), "Al-Madina Superstore", response.Transaction.Category)
	assert.Equal(suite.T(), "Rice 5kg, Cooking oil", response.Transaction.Description)
	assert.Equal(suite.T(), ledger.DirectionOutgoing, response.Transaction.Direction)
	assert.True(suite.T(), decimal.NewFromFloat(1250.50).Equal(response.Transaction.Amount), "Amount is %s", response.Transaction.Amount)
	require.NotNil(suite.T(), response.Transaction.ReceiptID)
	assert.Equal(suite.T(), response.Data.ID, *response.Transaction.ReceiptID)
}

func (suite *TestSuiteStandard) TestReceiptCreateSparseExtraction() {
	// An extraction missing almost everything still produces a transaction
	response := createTestReceipt(suite.T(), json.RawMessage(`{}`))

	require.NotNil(suite.T(), response.Transaction)
	assert.Equal(suite.T(), "Uncategorized", response.Transaction.Category)
	assert.True(suite.T(), response.Transaction.Amount.IsZero())
	assert.True(suite.T(), ledger.SentinelDate.Equal(response.Transaction.Date))
}

func (suite *TestSuiteStandard) TestReceiptCreateNoFile() {
	useParser(suite.T(), stubParser{raw: json.RawMessage(`{}`)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/receipts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ReceiptCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "you must send a file to this endpoint", *response.Error)
}

func (suite *TestSuiteStandard) TestReceiptCreateNoOwner() {
	useParser(suite.T(), stubParser{raw: json.RawMessage(`{}`)})

	body, headers := test.MultipartFile(suite.T(), "receipt.jpg", "image/jpeg", []byte("content"), nil)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/receipts", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestReceiptCreateExtractionFails() {
	useParser(suite.T(), stubParser{err: fmt.Errorf("%w: the model returned garbage", extraction.ErrExtraction)})

	body, headers := test.MultipartFile(suite.T(), "receipt.jpg", "image/jpeg", []byte("content"), map[string]string{
		"owner": "test-owner",
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/receipts", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestReceiptGet() {
	raw := json.RawMessage(`{"VendorName": "Chai Khana", "TotalAmount": "300"}`)
	receipt := createTestReceipt(suite.T(), raw)

	r := test.Request(suite.T(), http.MethodGet, receipt.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReceiptResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.JSONEq(suite.T(), string(raw), string(response.Data.Extraction))
}

func (suite *TestSuiteStandard) TestReceiptDeleteKeepsTransaction() {
	receipt := createTestReceipt(suite.T(), json.RawMessage(`{"TotalAmount": "42"}`))

	r := test.Request(suite.T(), http.MethodDelete, receipt.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, receipt.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The transaction derived from the receipt stays
	r = test.Request(suite.T(), http.MethodGet, receipt.Transaction.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestReceiptDBClosed() {
	suite.CloseDB()

	createTestReceipt(suite.T(), json.RawMessage(`{}`), http.StatusInternalServerError)
}
