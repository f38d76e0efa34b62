package planner

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultTolerance is the bisection bracket width at which Solve stops: one cent.
const DefaultTolerance = 0.01

// extraIterations pads the theoretical iteration bound so rounding in the
// bracket width never trips ErrConvergence on a healthy run.
const extraIterations = 4

// AnnuityFactor returns Σ_{t=0}^{years-1} (1+rate)^(years-t-1), the future
// value at the horizon of one unit contributed at the end of each period.
func AnnuityFactor(years int, rate float64) float64 {
	var sum float64
	for t := 0; t < years; t++ {
		sum += math.Pow(1+rate, float64(years-t-1))
	}
	return sum
}

// FutureValue returns the horizon value of a level end-of-period
// contribution made for years periods growing at rate.
func FutureValue(contribution float64, years int, rate float64) float64 {
	return contribution * AnnuityFactor(years, rate)
}

// Solve finds the level end-of-period contribution whose future value after
// years periods at investmentRate equals futureGoal. It bisects on
// [0, futureGoal] until the bracket is no wider than tolerance and returns
// the final midpoint rounded to cents. A non-positive tolerance selects
// DefaultTolerance.
//
// The bracket is valid for every rate above -1 because the annuity factor
// includes the final contribution's unit term, so FutureValue(futureGoal) is
// at least futureGoal.
func Solve(futureGoal float64, years int, investmentRate, tolerance float64) (float64, error) {
	if !isFinite(futureGoal) || futureGoal < 0 {
		return 0, fmt.Errorf("%w: future goal must be a finite non-negative amount", ErrInvalidInput)
	}
	if years <= 0 {
		return 0, fmt.Errorf("%w: years must be positive, got %d", ErrInvalidInput, years)
	}
	if err := checkRate("investment rate", investmentRate); err != nil {
		return 0, err
	}
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return 0, fmt.Errorf("%w: tolerance must be finite", ErrInvalidInput)
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	if futureGoal == 0 {
		return 0, nil
	}

	factor := AnnuityFactor(years, investmentRate)
	if !isFinite(factor) {
		return 0, fmt.Errorf("%w: investment rate %g too large for %d years", ErrInvalidInput, investmentRate, years)
	}

	mid, err := bisect(futureGoal, factor, tolerance, maxIterations(futureGoal, tolerance))
	if err != nil {
		return 0, err
	}
	return RoundCents(mid), nil
}

// bisect narrows [0, goal] around the contribution c with c*factor == goal
// and returns the last midpoint. It fails with ErrConvergence if the bracket
// is still wider than tolerance after limit halvings.
func bisect(goal, factor, tolerance float64, limit int) (float64, error) {
	low, high := 0.0, goal
	mid := (low + high) / 2

	for i := 0; high-low > tolerance; i++ {
		if i >= limit {
			return 0, fmt.Errorf("%w: bracket [%g, %g] still wider than %g after %d iterations",
				ErrConvergence, low, high, tolerance, limit)
		}
		mid = (low + high) / 2
		// Bracket narrower than float64 can split: mid is as close as it gets.
		if mid <= low || mid >= high {
			break
		}
		if mid*factor < goal {
			low = mid
		} else {
			high = mid
		}
	}
	return mid, nil
}

// maxIterations returns ceil(log2(width / tolerance)) plus padding.
func maxIterations(width, tolerance float64) int {
	if width <= tolerance {
		return extraIterations
	}
	return int(math.Ceil(math.Log2(width/tolerance))) + extraIterations
}

// RoundCents rounds an amount to two decimal places.
func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
