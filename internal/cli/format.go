// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a currency code is empty.
const DefaultCurrency = "USD"

// FormatMoney formats an amount in the given ISO 4217 currency, rounded to the
// currency's minor unit. e.g., 1234567.891, "USD" -> "$1,234,567.89"
// Unknown codes fall back to a plain grouped number followed by the code.
func FormatMoney(amount float64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	if s, ok := nonFinite(amount); ok {
		return s
	}

	cur := money.GetCurrency(code)
	if cur == nil {
		return FormatDecimal(amount, 2) + " " + code
	}

	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().LessThanOrEqual(maxMinorUnits) {
		return money.New(minor.IntPart(), code).Display()
	}
	return formatLargeMinor(minor, cur)
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// formatLargeMinor lays out an amount in minor units that does not fit in an
// int64, using the currency's separators and template like go-money does.
func formatLargeMinor(minor decimal.Decimal, cur *money.Currency) string {
	digits := minor.Abs().String()
	if len(digits) <= cur.Fraction {
		digits = strings.Repeat("0", cur.Fraction-len(digits)+1) + digits
	}
	whole, frac := digits[:len(digits)-cur.Fraction], digits[len(digits)-cur.Fraction:]

	s := groupDigits(whole, cur.Thousand)
	if cur.Fraction > 0 {
		s += cur.Decimal + frac
	}
	s = strings.Replace(cur.Template, "1", s, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if minor.IsNegative() {
		return "-" + s
	}
	return s
}

// nonFinite renders NaN and infinities, which decimal cannot represent.
func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	}
	return "", false
}

// KnownCurrency reports whether code is an ISO 4217 currency go-money knows.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}

// FormatDecimal formats a value with comma separators and a fixed number of
// decimal places. e.g., 1234567.891, 2 -> "1,234,567.89"
func FormatDecimal(v float64, places int32) string {
	if s, ok := nonFinite(v); ok {
		return s
	}

	d := decimal.NewFromFloat(v).Round(places)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	s := groupDigits(d.Truncate(0).String(), ",")
	if places > 0 {
		frac := d.StringFixed(places)
		s += frac[strings.IndexByte(frac, '.'):]
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	return groupDigits(strconv.FormatInt(n, 10), ",")
}

// groupDigits inserts sep between each group of three digits of s.
func groupDigits(s, sep string) string {
	if len(s) <= 3 || sep == "" {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteString(sep)
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatRate formats a fractional rate as a percentage string.
// e.g., 0.035 -> "3.50%"
func FormatRate(r float64) string {
	return fmt.Sprintf("%.2f%%", r*100)
}

// FormatYears formats a period count. e.g., 1 -> "1 year", 40 -> "40 years"
func FormatYears(n int) string {
	if n == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", n)
}
