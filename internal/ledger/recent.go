package ledger

import (
	"fmt"
	"sort"
	"time"
)

// DefaultRecentLimit is the number of transactions shown in the recent
// transactions dashboard card.
const DefaultRecentLimit = 4

// Selection is the result of capping a transaction list for a "recent"
// view. OverflowCount is the number of transactions that did not fit,
// rendered as "N more transactions...".
type Selection struct {
	Shown         []Record
	OverflowCount int
}

// SelectRecent returns the most recent records, capped at limit.
//
// Records are ordered by date descending. Ties keep their input order,
// the sort is stable so repeated calls on the same input yield the same
// selection. The input slice is not mutated. A limit of zero or less
// falls back to DefaultRecentLimit.
func SelectRecent(records []Record, limit int) Selection {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) <= limit {
		return Selection{Shown: sorted, OverflowCount: 0}
	}

	return Selection{
		Shown:         sorted[:limit],
		OverflowCount: len(sorted) - limit,
	}
}

// RelativeLabel maps a transaction date to the label shown next to it:
// "Today", "Yesterday", "N days ago" for up to a week, and the literal
// date for anything older. Every date maps to exactly one label; future
// dates are clamped to "Today".
func RelativeLabel(date time.Time, now time.Time) string {
	// Compare calendar days in the reference location, the time of day
	// must not influence the label.
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	recordDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	days := int(nowDay.Sub(recordDay).Hours() / 24)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return date.Format("01/02/2006")
	}
}
