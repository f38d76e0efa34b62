package planner

import (
	"fmt"
	"math"

	"github.com/theirongolddev/nestegg/internal/model"
)

// BuildSchedule expands a level contribution into one row per period, each
// carrying the contribution's value at the horizon, followed by the total.
func BuildSchedule(contribution float64, years int, investmentRate float64, startYear int) (model.Schedule, error) {
	if !isFinite(contribution) || contribution < 0 {
		return model.Schedule{}, fmt.Errorf("%w: contribution must be a finite non-negative amount", ErrInvalidInput)
	}
	if years <= 0 {
		return model.Schedule{}, fmt.Errorf("%w: years must be positive, got %d", ErrInvalidInput, years)
	}
	if err := checkRate("investment rate", investmentRate); err != nil {
		return model.Schedule{}, err
	}

	rows := make([]model.ScheduleRow, 0, years)
	var totalFV float64
	for t := 0; t < years; t++ {
		fv := contribution * math.Pow(1+investmentRate, float64(years-t-1))
		rows = append(rows, model.ScheduleRow{
			Period:           t,
			Year:             startYear + t,
			PeriodsRemaining: years - t,
			Contribution:     contribution,
			FutureValue:      fv,
		})
		totalFV += fv
	}
	if !isFinite(totalFV) {
		return model.Schedule{}, fmt.Errorf("%w: investment rate %g too large for %d years", ErrInvalidInput, investmentRate, years)
	}

	return model.Schedule{
		Rows: rows,
		Total: model.ScheduleTotal{
			Contribution: contribution * float64(years),
			FutureValue:  totalFV,
		},
	}, nil
}
