package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	// DescriptionLimit is the character budget for transaction
	// descriptions in list views.
	DescriptionLimit = 20

	// DescriptionPlaceholder is rendered for empty descriptions.
	DescriptionPlaceholder = "No description"

	// DefaultCurrencyPrefix is the display prefix used when the caller
	// does not specify one. The prefix is a presentation parameter, it is
	// never derived from the data.
	DefaultCurrencyPrefix = "Rs."
)

// Currency formats an amount with two fixed decimal places and the given
// display prefix, e.g. "Rs.200.00".
func Currency(amount decimal.Decimal, prefix string) string {
	return prefix + amount.StringFixed(2)
}

// Signed formats an amount with the display sign derived from the
// direction: "+Rs.200.00" for incoming, "-Rs.200.00" for outgoing.
func Signed(amount decimal.Decimal, direction Direction, prefix string) string {
	sign := "-"
	if direction == DirectionIncoming {
		sign = "+"
	}

	return sign + Currency(amount, prefix)
}

// SpentLabel renders the "spent" line of a budget card, e.g. "Rs.200.00 spent".
func SpentLabel(spent decimal.Decimal, prefix string) string {
	return Currency(spent, prefix) + " spent"
}

// LeftLabel renders the "left" line of a budget card, e.g. "Rs.300.00 left".
func LeftLabel(remaining decimal.Decimal, prefix string) string {
	return Currency(remaining, prefix) + " left"
}

// Description truncates a description to the display budget, appending an
// ellipsis marker. Empty descriptions render as the placeholder.
func Description(s string) string {
	if s == "" {
		return DescriptionPlaceholder
	}

	runes := []rune(s)
	if len(runes) <= DescriptionLimit {
		return s
	}

	return string(runes[:DescriptionLimit]) + "..."
}

// Percent renders a percent-used value for a progress bar. The display
// value is clamped to [0, 100]; the unbounded value stays available on
// Usage for overspend indicators.
func Percent(p int) string {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}

	return fmt.Sprintf("%d%%", p)
}

// SymbolFor resolves an ISO 4217 currency code to its display symbol,
// e.g. "USD" to "$". Unknown codes fall back to the code itself.
func SymbolFor(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}

	return fmt.Sprintf("%v", currency.Symbol(unit))
}
