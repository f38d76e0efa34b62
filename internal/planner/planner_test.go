package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/theirongolddev/nestegg/internal/model"
)

func closedFormContribution(goal float64, years int, rate float64) float64 {
	if rate == 0 {
		return goal / float64(years)
	}
	return goal * rate / (math.Pow(1+rate, float64(years)) - 1)
}

func TestProject_Identity(t *testing.T) {
	for _, r := range []float64{0, 0.03, 0.5, -0.2} {
		got, err := Project(1234.56, 0, r)
		if err != nil {
			t.Fatalf("Project(v, 0, %g): %v", r, err)
		}
		if got != 1234.56 {
			t.Errorf("Project(v, 0, %g) = %g, want 1234.56", r, got)
		}
	}
	for _, n := range []int{0, 1, 10, 40} {
		got, err := Project(1234.56, n, 0)
		if err != nil {
			t.Fatalf("Project(v, %d, 0): %v", n, err)
		}
		if got != 1234.56 {
			t.Errorf("Project(v, %d, 0) = %g, want 1234.56", n, got)
		}
	}
}

func TestProject_Compounds(t *testing.T) {
	got, err := Project(100_000, 10, 0.03)
	if err != nil {
		t.Fatal(err)
	}
	want := 100_000 * math.Pow(1.03, 10)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("Project = %.6f, want %.6f", got, want)
	}
}

func TestProject_Monotonic(t *testing.T) {
	rates := []float64{0, 0.01, 0.03, 0.08, 0.25}
	for _, r := range rates {
		prev := 0.0
		for n := 0; n <= 50; n++ {
			got, err := Project(500_000, n, r)
			if err != nil {
				t.Fatal(err)
			}
			if got < prev {
				t.Fatalf("Project not monotonic in years at rate %g: year %d = %g < %g", r, n, got, prev)
			}
			prev = got
		}
	}
	for _, n := range []int{1, 5, 30} {
		prev := 0.0
		for _, r := range rates {
			got, err := Project(500_000, n, r)
			if err != nil {
				t.Fatal(err)
			}
			if got < prev {
				t.Fatalf("Project not monotonic in rate over %d years: rate %g = %g < %g", n, r, got, prev)
			}
			prev = got
		}
	}
}

func TestProject_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		years int
		rate  float64
	}{
		{"negative years", 1000, -1, 0.03},
		{"rate of -1", 1000, 10, -1},
		{"rate below -1", 1000, 10, -1.5},
		{"NaN rate", 1000, 10, math.NaN()},
		{"infinite value", math.Inf(1), 10, 0.03},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(tt.value, tt.years, tt.rate)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAnnuityFactor(t *testing.T) {
	if got := AnnuityFactor(5, 0); got != 5 {
		t.Errorf("AnnuityFactor(5, 0) = %g, want 5", got)
	}
	// closed form ((1+r)^n - 1) / r
	want := (math.Pow(1.05, 20) - 1) / 0.05
	if got := AnnuityFactor(20, 0.05); math.Abs(got-want) > 1e-9 {
		t.Errorf("AnnuityFactor(20, 0.05) = %.12f, want %.12f", got, want)
	}
	if got := AnnuityFactor(0, 0.05); got != 0 {
		t.Errorf("AnnuityFactor(0, 0.05) = %g, want 0", got)
	}
}

func TestSolve_MatchesClosedForm(t *testing.T) {
	goals := []float64{1_000, 250_000, 1_000_000, 3_262_037.79}
	yearsList := []int{1, 2, 10, 25, 40}
	rates := []float64{0, 0.03, 0.05, 0.07, 0.12, -0.02}

	for _, goal := range goals {
		for _, years := range yearsList {
			for _, rate := range rates {
				c, err := Solve(goal, years, rate, DefaultTolerance)
				if err != nil {
					t.Fatalf("Solve(%g, %d, %g): %v", goal, years, rate, err)
				}
				if c < 0 {
					t.Fatalf("Solve(%g, %d, %g) = %g, want non-negative", goal, years, rate, c)
				}
				want := closedFormContribution(goal, years, rate)
				// bracket width plus cent rounding
				if math.Abs(c-want) > DefaultTolerance+0.005+1e-9 {
					t.Errorf("Solve(%g, %d, %g) = %.4f, closed form %.4f", goal, years, rate, c, want)
				}
			}
		}
	}
}

func TestSolve_RoundTrip(t *testing.T) {
	goal := 1_000_000 * math.Pow(1.03, 40)
	c, err := Solve(goal, 40, 0.05, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}

	factor := AnnuityFactor(40, 0.05)
	slack := factor * (DefaultTolerance + 0.005)
	if fv := FutureValue(c, 40, 0.05); math.Abs(fv-goal) > slack {
		t.Fatalf("FutureValue(Solve(goal)) = %.2f, goal %.2f, slack %.4f", fv, goal, slack)
	}

	sched, err := BuildSchedule(c, 40, 0.05, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(sched.Total.FutureValue-goal) > slack {
		t.Fatalf("schedule total FV = %.2f, goal %.2f", sched.Total.FutureValue, goal)
	}
}

func TestSolve_ZeroGoal(t *testing.T) {
	c, err := Solve(0, 10, 0.05, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if c != 0 {
		t.Fatalf("Solve(0, ...) = %g, want 0", c)
	}
}

func TestSolve_DefaultTolerance(t *testing.T) {
	a, err := Solve(120_000, 12, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Solve(120_000, 12, 0, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("tolerance 0 gave %g, DefaultTolerance gave %g", a, b)
	}
	if math.Abs(a-10_000) > 0.015 {
		t.Fatalf("Solve = %g, want ~10000", a)
	}
}

func TestSolve_LargeGoalTerminates(t *testing.T) {
	goal := 1e20
	c, err := Solve(goal, 30, 0.05, DefaultTolerance)
	if err != nil {
		t.Fatalf("Solve(1e20): %v", err)
	}
	want := closedFormContribution(goal, 30, 0.05)
	if math.Abs(c-want)/want > 1e-12 {
		t.Fatalf("Solve(1e20) = %g, want %g", c, want)
	}
}

func TestSolve_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		goal  float64
		years int
		rate  float64
		tol   float64
	}{
		{"zero years", 1000, 0, 0.05, 0.01},
		{"negative years", 1000, -3, 0.05, 0.01},
		{"rate of -1", 1000, 10, -1, 0.01},
		{"negative goal", -5, 10, 0.05, 0.01},
		{"NaN goal", math.NaN(), 10, 0.05, 0.01},
		{"infinite rate", 1000, 10, math.Inf(1), 0.01},
		{"NaN tolerance", 1000, 10, 0.05, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.goal, tt.years, tt.rate, tt.tol)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestSolve_RateTooLargeForHorizon(t *testing.T) {
	if f := AnnuityFactor(MaxYears, 100); !math.IsInf(f, 1) {
		t.Fatalf("AnnuityFactor(%d, 100) = %g, want +Inf", MaxYears, f)
	}
	if _, err := Solve(1_000_000, MaxYears, 100, DefaultTolerance); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Solve: err = %v, want ErrInvalidInput", err)
	}
	if _, err := BuildSchedule(0.01, MaxYears, 100, 2024); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("BuildSchedule: err = %v, want ErrInvalidInput", err)
	}
}

func TestBisect_IterationLimit(t *testing.T) {
	if _, err := bisect(1_000_000, 2, DefaultTolerance, 1); !errors.Is(err, ErrConvergence) {
		t.Fatalf("err = %v, want ErrConvergence", err)
	}

	mid, err := bisect(1_000_000, 2, DefaultTolerance, maxIterations(1_000_000, DefaultTolerance))
	if err != nil {
		t.Fatalf("bisect with full limit: %v", err)
	}
	if math.Abs(mid-500_000) > DefaultTolerance {
		t.Fatalf("bisect = %.4f, want within a cent of 500000", mid)
	}
}

func TestMaxIterations(t *testing.T) {
	if got := maxIterations(1_000_000, 0.01); got != 27+extraIterations {
		t.Errorf("maxIterations(1e6, 0.01) = %d, want %d", got, 27+extraIterations)
	}
	if got := maxIterations(0.005, 0.01); got != extraIterations {
		t.Errorf("maxIterations(width < tol) = %d, want %d", got, extraIterations)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{499_999.996, 500_000},
		{12.344, 12.34},
		{12.345, 12.35},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildSchedule_Shape(t *testing.T) {
	sched, err := BuildSchedule(1_500, 30, 0.06, 2025)
	if err != nil {
		t.Fatal(err)
	}
	if len(sched.Rows) != 30 {
		t.Fatalf("rows = %d, want 30", len(sched.Rows))
	}

	var sum float64
	for i, row := range sched.Rows {
		if row.Period != i {
			t.Errorf("row %d Period = %d", i, row.Period)
		}
		if row.Year != 2025+i {
			t.Errorf("row %d Year = %d, want %d", i, row.Year, 2025+i)
		}
		if row.PeriodsRemaining != 30-i {
			t.Errorf("row %d PeriodsRemaining = %d, want %d", i, row.PeriodsRemaining, 30-i)
		}
		if i > 0 && row.PeriodsRemaining >= sched.Rows[i-1].PeriodsRemaining {
			t.Errorf("PeriodsRemaining not strictly decreasing at row %d", i)
		}
		if i > 0 && row.FutureValue > sched.Rows[i-1].FutureValue {
			t.Errorf("later contribution grew more than earlier one at row %d", i)
		}
		sum += row.FutureValue
	}
	if sched.Rows[29].PeriodsRemaining != 1 {
		t.Errorf("last PeriodsRemaining = %d, want 1", sched.Rows[29].PeriodsRemaining)
	}
	if sched.Rows[29].FutureValue != 1_500 {
		t.Errorf("last row FV = %g, want the bare contribution", sched.Rows[29].FutureValue)
	}
	if math.Abs(sched.Total.Contribution-45_000) > 1e-9 {
		t.Errorf("total contribution = %g, want 45000", sched.Total.Contribution)
	}
	if math.Abs(sched.Total.FutureValue-sum) > 1e-9 {
		t.Errorf("total FV = %g, want %g", sched.Total.FutureValue, sum)
	}
	if want := FutureValue(1_500, 30, 0.06); math.Abs(sched.Total.FutureValue-want) > 1e-6 {
		t.Errorf("total FV = %g, FutureValue = %g", sched.Total.FutureValue, want)
	}
}

func TestBuildSchedule_InvalidInput(t *testing.T) {
	if _, err := BuildSchedule(100, 0, 0.05, 2024); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero years: err = %v, want ErrInvalidInput", err)
	}
	if _, err := BuildSchedule(100, 10, -1, 2024); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("rate -1: err = %v, want ErrInvalidInput", err)
	}
	if _, err := BuildSchedule(-100, 10, 0.05, 2024); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative contribution: err = %v, want ErrInvalidInput", err)
	}
}

func TestCompute_MillionOverTwoYears(t *testing.T) {
	plan, err := Compute(model.GoalInput{
		PresentValue:   1_000_000,
		Years:          2,
		InflationRate:  0,
		InvestmentRate: 0,
		StartYear:      2024,
	}, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}

	if plan.FutureGoal != 1_000_000 {
		t.Fatalf("FutureGoal = %.2f, want 1000000.00", plan.FutureGoal)
	}
	if math.Abs(plan.Contribution-500_000) > 0.01+1e-9 {
		t.Fatalf("Contribution = %.2f, want 500000.00", plan.Contribution)
	}

	rows := plan.Schedule.Rows
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Year != 2024 || rows[0].PeriodsRemaining != 2 {
		t.Errorf("row 1 = %+v, want year 2024 with 2 remaining", rows[0])
	}
	if rows[1].Year != 2025 || rows[1].PeriodsRemaining != 1 {
		t.Errorf("row 2 = %+v, want year 2025 with 1 remaining", rows[1])
	}
	for i, row := range rows {
		if math.Abs(row.FutureValue-500_000) > 0.01+1e-9 {
			t.Errorf("row %d FV = %.2f, want 500000.00", i+1, row.FutureValue)
		}
	}
	if math.Abs(plan.Schedule.Total.Contribution-1_000_000) > 0.02+1e-9 {
		t.Errorf("total contribution = %.2f, want 1000000.00", plan.Schedule.Total.Contribution)
	}
	if math.Abs(plan.Schedule.Total.FutureValue-1_000_000) > 0.02+1e-9 {
		t.Errorf("total FV = %.2f, want 1000000.00", plan.Schedule.Total.FutureValue)
	}
	if plan.EndYear() != 2025 {
		t.Errorf("EndYear = %d, want 2025", plan.EndYear())
	}
}

func TestCompute_RejectsInvalidInput(t *testing.T) {
	base := model.GoalInput{
		PresentValue:   1_000_000,
		Years:          30,
		InflationRate:  0.03,
		InvestmentRate: 0.05,
		StartYear:      2024,
	}

	tests := []struct {
		name   string
		mutate func(*model.GoalInput)
	}{
		{"zero years", func(in *model.GoalInput) { in.Years = 0 }},
		{"too many years", func(in *model.GoalInput) { in.Years = MaxYears + 1 }},
		{"investment rate -1", func(in *model.GoalInput) { in.InvestmentRate = -1 }},
		{"inflation rate -2", func(in *model.GoalInput) { in.InflationRate = -2 }},
		{"zero goal", func(in *model.GoalInput) { in.PresentValue = 0 }},
		{"NaN goal", func(in *model.GoalInput) { in.PresentValue = math.NaN() }},
		{"start year before 1900", func(in *model.GoalInput) { in.StartYear = MinStartYear - 1 }},
		{"start year past 9999", func(in *model.GoalInput) { in.StartYear = MaxStartYear + 1 }},
		{"zero start year", func(in *model.GoalInput) { in.StartYear = 0 }},
		{"investment rate overflows horizon", func(in *model.GoalInput) {
			in.Years, in.InflationRate, in.InvestmentRate = MaxYears, 0, 100
		}},
		{"inflation rate overflows horizon", func(in *model.GoalInput) {
			in.Years, in.InflationRate = MaxYears, 100
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			plan, err := Compute(in, DefaultTolerance)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			if len(plan.Schedule.Rows) != 0 {
				t.Fatalf("schedule produced for invalid input: %d rows", len(plan.Schedule.Rows))
			}
		})
	}
}
