// Package prompt collects plan inputs interactively with huh forms and
// parses the free-form answers into numbers.
package prompt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/nestegg/internal/planner"
)

// ParseAmount parses a money amount, tolerating a leading currency symbol,
// thousands separators, and surrounding spaces. e.g., "$1,000,000" -> 1e6
func ParseAmount(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimLeft(clean, "$€£¥ ")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, "_", "")
	if clean == "" {
		return 0, errors.New("enter an amount")
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return v, nil
}

// ParseYears parses a positive number of years no larger than planner.MaxYears.
func ParseYears(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	if n <= 0 {
		return 0, errors.New("years must be at least 1")
	}
	if n > planner.MaxYears {
		return 0, fmt.Errorf("years must be at most %d", planner.MaxYears)
	}
	return n, nil
}

// ParseRate parses a rate written as a fraction ("0.03") or a percentage
// ("3%"). The rate must be greater than -1.
func ParseRate(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	percent := strings.HasSuffix(clean, "%")
	clean = strings.TrimSpace(strings.TrimSuffix(clean, "%"))
	if clean == "" {
		return 0, errors.New("enter a rate")
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a rate", s)
	}
	if percent {
		v /= 100
	}
	if v <= -1 {
		return 0, errors.New("rate must be greater than -100%")
	}
	return v, nil
}

// ParseYear parses a calendar year.
func ParseYear(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a year", s)
	}
	if n < planner.MinStartYear || n > planner.MaxStartYear {
		return 0, fmt.Errorf("year %d is out of range (%d-%d)", n, planner.MinStartYear, planner.MaxStartYear)
	}
	return n, nil
}
