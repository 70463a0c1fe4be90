package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fintrackr/backend/internal/extraction"
	"github.com/fintrackr/backend/internal/httputil"
	"github.com/fintrackr/backend/internal/ledger"
	"github.com/fintrackr/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ReceiptParser is the extraction collaborator used for uploaded receipts.
// Tests replace it with a stub so that no network calls happen.
var ReceiptParser extraction.Parser = extraction.NewGemini()

// RegisterReceiptRoutes registers the routes for receipts with
// the RouterGroup that is passed.
func RegisterReceiptRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReceipts)
		r.POST("", CreateReceipt)
	}

	// Receipt with ID
	{
		r.OPTIONS("/:id", OptionsReceiptDetail)
		r.GET("/:id", GetReceipt)
		r.DELETE("/:id", DeleteReceipt)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receipts
// @Success		204
// @Router			/v1/receipts [options]
func OptionsReceipts(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Receipts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/receipts/{id} [options]
func OptionsReceiptDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Receipt{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("allow", "GET, DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		Upload receipt
// @Description	Sends a receipt image to the extraction model, stores the extraction verbatim and creates a transaction from it
// @Tags			Receipts
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ReceiptCreateResponse
// @Failure		400		{object}	ReceiptCreateResponse
// @Failure		500		{object}	ReceiptCreateResponse
// @Param			file	formData	file	true	"Receipt image"
// @Param			owner	formData	string	true	"UID of the owner"
// @Router			/v1/receipts [post]
func CreateReceipt(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if formFile == nil || err != nil {
		s := errNoFilePost.Error()
		c.JSON(http.StatusBadRequest, ReceiptCreateResponse{
			Error: &s,
		})
		return
	}

	f, err := formFile.Open()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReceiptCreateResponse{
			Error: &s,
		})
		return
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, ReceiptCreateResponse{
			Error: &s,
		})
		return
	}

	contentType := formFile.Header.Get("Content-Type")

	raw, err := ReceiptParser.Parse(c.Request.Context(), image, contentType)
	if err != nil {
		s := err.Error()

		// The model is an external collaborator, its failures are not
		// client errors
		httpStatus := status(err)
		if errors.Is(err, extraction.ErrExtraction) {
			httpStatus = http.StatusInternalServerError
		}

		c.JSON(httpStatus, ReceiptCreateResponse{
			Error: &s,
		})
		return
	}

	receipt := models.Receipt{
		OwnerID:       c.PostForm("owner"),
		Filename:      formFile.Filename,
		ContentType:   contentType,
		RawExtraction: raw,
	}

	err = models.DB.Create(&receipt).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptCreateResponse{
			Error: &s,
		})
		return
	}

	// Derive the transaction from the extraction. The normalizer tolerates
	// any subset of fields, so this cannot fail.
	var rawRecord ledger.RawRecord
	_ = json.Unmarshal(raw, &rawRecord)
	record := ledger.Normalize(rawRecord)

	transaction := models.Transaction{
		OwnerID:     receipt.OwnerID,
		Date:        record.Date,
		Amount:      record.Amount,
		Direction:   record.Direction,
		Category:    record.Category,
		Description: record.Description,
		ReceiptID:   &receipt.ID,
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptCreateResponse{
			Error: &s,
		})
		return
	}

	receiptData := newReceipt(c, receipt)
	transactionData := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, ReceiptCreateResponse{
		Data:        &receiptData,
		Transaction: &transactionData,
	})
}

// @Summary		Get receipt
// @Description	Returns a specific receipt with its stored extraction
// @Tags			Receipts
// @Produce		json
// @Success		200	{object}	ReceiptResponse
// @Failure		400	{object}	ReceiptResponse
// @Failure		404	{object}	ReceiptResponse
// @Failure		500	{object}	ReceiptResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/receipts/{id} [get]
func GetReceipt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptResponse{
			Error: &s,
		})
		return
	}

	var receipt models.Receipt
	err = models.DB.First(&receipt, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReceiptResponse{
			Error: &s,
		})
		return
	}

	data := newReceipt(c, receipt)
	c.JSON(http.StatusOK, ReceiptResponse{Data: &data})
}

// @Summary		Delete receipt
// @Description	Deletes a receipt. Transactions created from it are kept.
// @Tags			Receipts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/receipts/{id} [delete]
func DeleteReceipt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var receipt models.Receipt
	err = models.DB.First(&receipt, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&receipt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
