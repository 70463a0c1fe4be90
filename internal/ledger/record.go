// Package ledger implements the transaction aggregation pipeline that
// feeds the dashboard views: normalization of raw stored records into one
// canonical shape, per-category and per-period aggregation, recency
// selection and display formatting.
//
// Every function in this package is a pure function of its arguments. The
// package performs no I/O and holds no state, callers pass in fully
// materialized slices.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction distinguishes money entering from money leaving the tracked
// account. The sign of a display amount is derived from it, Amount itself
// is always non-negative.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// Directions contains all valid directions.
var Directions = []Direction{DirectionIncoming, DirectionOutgoing}

// Valid reports whether the direction is one of the two recognized tokens.
func (d Direction) Valid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

// Record is the canonical transaction shape all aggregation and
// presentation logic operates on.
type Record struct {
	ID          string
	OwnerID     string
	Date        time.Time
	Amount      decimal.Decimal // magnitude, always >= 0
	Direction   Direction
	Category    string
	Description string
}
