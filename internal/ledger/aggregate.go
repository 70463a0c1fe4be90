package ledger

import (
	"github.com/fintrackr/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the aggregate for one expense category.
type CategoryTotal struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// DirectionTotal sums the two directions separately within one time bucket.
type DirectionTotal struct {
	Outgoing decimal.Decimal `json:"outgoing"`
	Incoming decimal.Decimal `json:"incoming"`
}

// Usage contains the derived budget metrics for one budget.
//
// Remaining is clamped at zero, overspending never produces a negative
// value. PercentUsed is deliberately unbounded above so that consumers can
// signal overspend; it is zero when nothing is allocated.
type Usage struct {
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed int             `json:"percentUsed"`
}

// ByCategory groups outgoing records by category and sums their amounts.
// Incoming records (e.g. salary) are excluded from expense totals.
//
// The grouping key is the exact category string. No ordering is imposed,
// consumers sort the map keys as needed.
func ByCategory(records []Record) map[string]CategoryTotal {
	totals := make(map[string]CategoryTotal)

	for _, record := range records {
		if record.Direction != DirectionOutgoing {
			continue
		}

		total := totals[record.Category]
		total.Total = total.Total.Add(record.Amount)
		total.Count++
		totals[record.Category] = total
	}

	return totals
}

// ByMonth buckets records into calendar months and sums both directions.
func ByMonth(records []Record) map[types.Month]DirectionTotal {
	totals := make(map[types.Month]DirectionTotal)

	for _, record := range records {
		month := types.MonthOf(record.Date)

		total := totals[month]
		switch record.Direction {
		case DirectionIncoming:
			total.Incoming = total.Incoming.Add(record.Amount)
		default:
			total.Outgoing = total.Outgoing.Add(record.Amount)
		}
		totals[month] = total
	}

	return totals
}

// ByDay buckets records into calendar days, keyed by the ISO date string.
func ByDay(records []Record) map[string]DirectionTotal {
	totals := make(map[string]DirectionTotal)

	for _, record := range records {
		day := record.Date.Format("2006-01-02")

		total := totals[day]
		switch record.Direction {
		case DirectionIncoming:
			total.Incoming = total.Incoming.Add(record.Amount)
		default:
			total.Outgoing = total.Outgoing.Add(record.Amount)
		}
		totals[day] = total
	}

	return totals
}

// BudgetUsage derives the spent, remaining and percent-used metrics for a
// budget from the current record set. A stored "spent" value is never
// trusted, the sum is always recomputed here.
//
// Category matching is exact string equality, see the matching note in
// DESIGN.md.
func BudgetUsage(allocated decimal.Decimal, category string, records []Record) Usage {
	spent := decimal.Zero
	for _, record := range records {
		if record.Direction == DirectionOutgoing && record.Category == category {
			spent = spent.Add(record.Amount)
		}
	}

	remaining := allocated.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	// Guard against division by zero: nothing allocated means nothing used.
	percentUsed := 0
	if allocated.IsPositive() {
		percentUsed = int(spent.Div(allocated).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}

	return Usage{
		Spent:       spent,
		Remaining:   remaining,
		PercentUsed: percentUsed,
	}
}
