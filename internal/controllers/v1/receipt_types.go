package v1

import (
	"encoding/json"
	"fmt"

	"github.com/fintrackr/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ReceiptLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/receipts/d430d7c3-d14c-4712-9336-ee56965a6673"`            // The receipt itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?receipt=d430d7c3-d14c-4712-9336-ee56965a6673"` // Transactions extracted from this receipt
}

// Receipt is the representation of a Receipt in API v1. The extraction is
// the model output exactly as it was returned.
type Receipt struct {
	models.DefaultModel
	OwnerID     string          `json:"owner" example:"y4F2pYmVXcQ1Zl8K"`    // UID of the owner
	Filename    string          `json:"filename" example:"receipt.jpg"`      // Name of the uploaded file
	ContentType string          `json:"contentType" example:"image/jpeg"`    // MIME type of the uploaded file
	Extraction  json.RawMessage `json:"extraction" swaggertype:"object"`     // The extracted invoice fields, stored verbatim
	Links       ReceiptLinks    `json:"links"`
}

// newReceipt returns the API v1 representation of the resource
func newReceipt(c *gin.Context, model models.Receipt) Receipt {
	url := c.GetString(string(models.DBContextURL))

	return Receipt{
		DefaultModel: model.DefaultModel,
		OwnerID:      model.OwnerID,
		Filename:     model.Filename,
		ContentType:  model.ContentType,
		Extraction:   json.RawMessage(model.RawExtraction),
		Links: ReceiptLinks{
			Self:         fmt.Sprintf("%s/v1/receipts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?receipt=%s", url, model.ID),
		},
	}
}

type ReceiptResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Receipt `json:"data"`                                                          // The Receipt data
}

// ReceiptCreateResponse carries the stored receipt together with the
// transaction that was created from its extraction.
type ReceiptCreateResponse struct {
	Error       *string      `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
	Data        *Receipt     `json:"data"`                                                  // The stored receipt
	Transaction *Transaction `json:"transaction"`                                           // The transaction created from the extraction
}
