// Package money formats decimal amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is used when an organization does not report one.
const DefaultCurrency = "NGN"

var symbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"GHS": "₵",
	"KES": "KSh",
	"ZAR": "R",
}

// Format renders amount with the currency symbol, English digit grouping and two decimals,
// e.g. ₦3,300.00. Negative amounts put the sign before the symbol; an amount that rounds
// to zero is unsigned.
func Format(amount decimal.Decimal, currencyCode string) string {
	prefix := Symbol(currencyCode)
	fixed := amount.Abs().StringFixed(2)
	if amount.IsNegative() && fixed != "0.00" {
		prefix = "-" + prefix
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	return prefix + group(whole) + "." + frac
}

// group inserts a comma between every three digits from the right.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatModifier renders a variation price delta with an explicit sign, e.g. +₦500.00.
func FormatModifier(amount decimal.Decimal, currencyCode string) string {
	if amount.IsNegative() {
		return Format(amount, currencyCode)
	}
	return "+" + Format(amount, currencyCode)
}

// Symbol returns the display prefix for an ISO 4217 code. Codes without a known symbol are
// rendered as the code followed by a space.
func Symbol(currencyCode string) string {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		code = DefaultCurrency
	}
	if s, ok := symbols[code]; ok {
		return s
	}
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String() + " "
	}
	return code + " "
}
