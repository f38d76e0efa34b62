package planner

import (
	"fmt"

	"github.com/theirongolddev/nestegg/internal/model"
)

// MaxYears caps the planning horizon accepted by Validate.
const MaxYears = 200

// Start years accepted by Validate.
const (
	MinStartYear = 1900
	MaxStartYear = 9999
)

// Validate checks a GoalInput against the planner's preconditions. The
// returned error wraps ErrInvalidInput and names the first offending field.
func Validate(in model.GoalInput) error {
	if !isFinite(in.PresentValue) || in.PresentValue <= 0 {
		return fmt.Errorf("%w: present value must be a positive amount", ErrInvalidInput)
	}
	if in.Years <= 0 {
		return fmt.Errorf("%w: years must be positive, got %d", ErrInvalidInput, in.Years)
	}
	if in.Years > MaxYears {
		return fmt.Errorf("%w: years must be at most %d, got %d", ErrInvalidInput, MaxYears, in.Years)
	}
	if in.StartYear < MinStartYear || in.StartYear > MaxStartYear {
		return fmt.Errorf("%w: start year must be between %d and %d, got %d",
			ErrInvalidInput, MinStartYear, MaxStartYear, in.StartYear)
	}
	if err := checkRate("inflation rate", in.InflationRate); err != nil {
		return err
	}
	return checkRate("investment rate", in.InvestmentRate)
}

// Compute runs the full calculation for one input: the goal is projected
// through inflation, the contribution solved, and the schedule built.
func Compute(in model.GoalInput, tolerance float64) (model.Plan, error) {
	if err := Validate(in); err != nil {
		return model.Plan{}, err
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	goal, err := Project(in.PresentValue, in.Years, in.InflationRate)
	if err != nil {
		return model.Plan{}, fmt.Errorf("projecting goal: %w", err)
	}
	if !isFinite(goal) {
		return model.Plan{}, fmt.Errorf("%w: inflation rate %g too large for %d years", ErrInvalidInput, in.InflationRate, in.Years)
	}

	contribution, err := Solve(goal, in.Years, in.InvestmentRate, tolerance)
	if err != nil {
		return model.Plan{}, fmt.Errorf("solving contribution: %w", err)
	}

	schedule, err := BuildSchedule(contribution, in.Years, in.InvestmentRate, in.StartYear)
	if err != nil {
		return model.Plan{}, fmt.Errorf("building schedule: %w", err)
	}

	return model.Plan{
		Input:        in,
		FutureGoal:   goal,
		Contribution: contribution,
		Tolerance:    tolerance,
		Schedule:     schedule,
	}, nil
}
