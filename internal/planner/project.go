// Package planner implements the retirement savings math: projecting a goal
// through inflation, solving for the level contribution that reaches it, and
// expanding that contribution into a year-by-year schedule.
//
// All functions are pure and safe for concurrent use.
package planner

import (
	"fmt"
	"math"
)

// Project returns presentValue compounded by inflationRate over years:
// presentValue * (1 + inflationRate)^years.
//
// A zero horizon or a zero rate returns presentValue unchanged.
func Project(presentValue float64, years int, inflationRate float64) (float64, error) {
	if !isFinite(presentValue) {
		return 0, fmt.Errorf("%w: present value must be finite", ErrInvalidInput)
	}
	if years < 0 {
		return 0, fmt.Errorf("%w: years must not be negative, got %d", ErrInvalidInput, years)
	}
	if err := checkRate("inflation rate", inflationRate); err != nil {
		return 0, err
	}

	if years == 0 || inflationRate == 0 {
		return presentValue, nil
	}
	return presentValue * math.Pow(1+inflationRate, float64(years)), nil
}

func checkRate(name string, rate float64) error {
	if !isFinite(rate) {
		return fmt.Errorf("%w: %s must be finite", ErrInvalidInput, name)
	}
	if rate <= -1 {
		return fmt.Errorf("%w: %s must be greater than -1, got %g", ErrInvalidInput, name, rate)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
