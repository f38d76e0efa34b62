package cli

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1_000_000, "USD", "$1,000,000.00"},
		{500_000, "usd", "$500,000.00"},
		{1_234_567.891, "", "$1,234,567.89"},
		{0.005, "USD", "$0.01"},
		{0, "USD", "$0.00"},
		{999.999, "USD", "$1,000.00"},
		{1_500, "XYZ", "1,500.00 XYZ"},
		{-12.5, "USD", "-$12.50"},
		// minor units beyond int64
		{1e20, "USD", "$100,000,000,000,000,000,000.00"},
		{-1e20, "USD", "-$100,000,000,000,000,000,000.00"},
		{1e20, "JPY", "¥100,000,000,000,000,000,000"},
		{1e20, "XYZ", "100,000,000,000,000,000,000.00 XYZ"},
		{math.Inf(1), "USD", "∞"},
		{math.Inf(-1), "USD", "-∞"},
		{math.NaN(), "USD", "NaN"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestKnownCurrency(t *testing.T) {
	if !KnownCurrency("eur") {
		t.Error("KnownCurrency(eur) = false")
	}
	if KnownCurrency("XYZ") {
		t.Error("KnownCurrency(XYZ) = true")
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		v      float64
		places int32
		want   string
	}{
		{1_234_567.891, 2, "1,234,567.89"},
		{-1_234.5, 2, "-1,234.50"},
		{12, 0, "12"},
		{0.1, 2, "0.10"},
		{1e20, 2, "100,000,000,000,000,000,000.00"},
		{math.Inf(1), 2, "∞"},
		{math.NaN(), 0, "NaN"},
	}
	for _, tt := range tests {
		if got := FormatDecimal(tt.v, tt.places); got != tt.want {
			t.Errorf("FormatDecimal(%v, %d) = %q, want %q", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-42000, "-42,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(0.035); got != "3.50%" {
		t.Errorf("FormatRate(0.035) = %q", got)
	}
	if got := FormatRate(0); got != "0.00%" {
		t.Errorf("FormatRate(0) = %q", got)
	}
}

func TestFormatYears(t *testing.T) {
	if got := FormatYears(1); got != "1 year" {
		t.Errorf("FormatYears(1) = %q", got)
	}
	if got := FormatYears(40); got != "40 years" {
		t.Errorf("FormatYears(40) = %q", got)
	}
}
