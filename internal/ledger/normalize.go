package ledger

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is used for records that carry neither a vendor name
// nor a category.
const DefaultCategory = "Uncategorized"

// SentinelDate is assigned to records whose date is missing or does not
// parse. It is far in the past so that such records sort last in
// most-recent-first views instead of being dropped.
var SentinelDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// dateLayouts are the formats accepted for raw record dates. Receipt
// extractions have been observed to return all three.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
}

// RawItem is a single line item from a receipt extraction.
type RawItem struct {
	ItemName string          `json:"ItemName"`
	Price    decimal.Decimal `json:"Price"`
	Quantity int             `json:"Quantity"`
}

// RawRecord is the union of the two transaction shapes found in the
// record store: the receipt-extraction shape (InvoiceNumber, TotalAmount,
// VendorName, ...) and the manual-entry shape (amount, category, date,
// description). Every field is optional, Normalize substitutes defaults
// for everything that is missing.
type RawRecord struct {
	ID      string `json:"id"`
	OwnerID string `json:"userid"`

	// Receipt extraction shape
	InvoiceNumber json.Number      `json:"InvoiceNumber"`
	TotalAmount   *decimal.Decimal `json:"TotalAmount"`
	VendorName    *string          `json:"VendorName"`
	InvoiceDate   *string          `json:"InvoiceDate"`
	Items         []RawItem        `json:"Items"`
	GSTAmount     *decimal.Decimal `json:"GSTAmount"`
	PaymentMethod *string          `json:"PaymentMethod"`

	// Manual entry shape
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Date        *string          `json:"date"`
	Description *string          `json:"description"`

	// Shared by both shapes
	InvoiceType *string `json:"InvoiceType"`
}

// Normalize converts one raw stored record into the canonical Record.
//
// It never fails: missing or malformed fields degrade to documented
// defaults so that one bad record cannot blank a whole dashboard view.
func Normalize(raw RawRecord) Record {
	return Record{
		ID:          raw.ID,
		OwnerID:     raw.OwnerID,
		Date:        normalizeDate(raw),
		Amount:      normalizeAmount(raw),
		Direction:   normalizeDirection(raw),
		Category:    normalizeCategory(raw),
		Description: normalizeDescription(raw),
	}
}

// NormalizeAll unmarshals a JSON array of raw records and normalizes every
// element. A document that is not an array is a contract violation by the
// caller and fails fast with ErrNotACollection. Elements that are not
// objects degrade to an all-defaults record instead of failing the whole
// collection.
func NormalizeAll(data []byte) ([]Record, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, ErrNotACollection
	}

	// null unmarshals into a nil slice without error
	if elements == nil {
		return nil, ErrNotACollection
	}

	records := make([]Record, 0, len(elements))
	for _, element := range elements {
		var raw RawRecord
		_ = json.Unmarshal(element, &raw)
		records = append(records, Normalize(raw))
	}

	return records, nil
}

// normalizeAmount resolves TotalAmount ?? amount ?? 0. Negative source
// values are a data error, the magnitude is kept and the sign discarded.
// Direction stays the single source of truth for the display sign.
func normalizeAmount(raw RawRecord) decimal.Decimal {
	amount := decimal.Zero
	if raw.TotalAmount != nil {
		amount = *raw.TotalAmount
	} else if raw.Amount != nil {
		amount = *raw.Amount
	}

	return amount.Abs()
}

func normalizeCategory(raw RawRecord) string {
	if raw.VendorName != nil && strings.TrimSpace(*raw.VendorName) != "" {
		return strings.TrimSpace(*raw.VendorName)
	}

	if raw.Category != nil && strings.TrimSpace(*raw.Category) != "" {
		return strings.TrimSpace(*raw.Category)
	}

	return DefaultCategory
}

func normalizeDate(raw RawRecord) time.Time {
	value := ""
	if raw.InvoiceDate != nil {
		value = strings.TrimSpace(*raw.InvoiceDate)
	} else if raw.Date != nil {
		value = strings.TrimSpace(*raw.Date)
	}

	if value == "" {
		return SentinelDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(time.UTC)
		}
	}

	return SentinelDate
}

// normalizeDirection reads the InvoiceType token. Only "incoming" is
// recognized as money entering the account, every other value defaults
// to outgoing.
func normalizeDirection(raw RawRecord) Direction {
	if raw.InvoiceType != nil && strings.EqualFold(strings.TrimSpace(*raw.InvoiceType), string(DirectionIncoming)) {
		return DirectionIncoming
	}

	return DirectionOutgoing
}

func normalizeDescription(raw RawRecord) string {
	if len(raw.Items) > 0 {
		names := make([]string, 0, len(raw.Items))
		for _, item := range raw.Items {
			if item.ItemName != "" {
				names = append(names, item.ItemName)
			}
		}

		if len(names) > 0 {
			return strings.Join(names, ", ")
		}
	}

	if raw.Description != nil {
		return strings.TrimSpace(*raw.Description)
	}

	return ""
}
