// Package money formats rupee amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol is the currency symbol used across the UI.
const RupeeSymbol = "₹"

// FormatINR renders an amount with the Indian digit grouping
// (1,00,000 rather than 100,000) and two decimal places.
func FormatINR(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupIndian(parts[0])

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(RupeeSymbol)
	b.WriteString(grouped)
	b.WriteString(".")
	b.WriteString(parts[1])
	return b.String()
}

// FormatINRCompact drops paise when the amount is whole, matching how
// balances appear on account cards.
func FormatINRCompact(amount decimal.Decimal) string {
	full := FormatINR(amount)
	return strings.TrimSuffix(full, ".00")
}

// groupIndian inserts commas per the Indian numbering system: the last
// three digits form one group, every two digits after that form the rest.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(append(groups, tail), ",")
}
