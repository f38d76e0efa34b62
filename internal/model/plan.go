// Package model defines the data types shared across nestegg packages.
package model

// GoalInput holds the five scalar inputs of a retirement plan.
type GoalInput struct {
	PresentValue   float64 // goal in today's money
	Years          int     // periods until retirement
	InflationRate  float64 // e.g. 0.03 for 3%
	InvestmentRate float64 // e.g. 0.05 for 5%
	StartYear      int     // calendar year of the first contribution
}

// ScheduleRow is one contribution period of a schedule.
type ScheduleRow struct {
	Period           int // 0-based period index
	Year             int
	PeriodsRemaining int
	Contribution     float64
	FutureValue      float64 // value of this contribution at the horizon
}

// ScheduleTotal is the synthetic TOTAL row closing a schedule.
type ScheduleTotal struct {
	Contribution float64
	FutureValue  float64
}

// Schedule is the ordered per-period projection plus its total.
type Schedule struct {
	Rows  []ScheduleRow
	Total ScheduleTotal
}

// Plan is the full result of one calculation.
type Plan struct {
	Input        GoalInput
	FutureGoal   float64
	Contribution float64
	Tolerance    float64
	Schedule     Schedule
}

// EndYear returns the calendar year of the last contribution, or StartYear
// for an empty schedule.
func (p Plan) EndYear() int {
	if n := len(p.Schedule.Rows); n > 0 {
		return p.Schedule.Rows[n-1].Year
	}
	return p.Input.StartYear
}
