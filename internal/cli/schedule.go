package cli

import (
	"strconv"

	"github.com/theirongolddev/nestegg/internal/model"
)

// Schedule column headers.
var ScheduleHeaders = []string{
	"Year",
	"Years to Retirement",
	"Annual Contribution",
	"Future Value at Retirement",
}

// TotalLabel labels the closing row of a schedule.
const TotalLabel = "TOTAL"

// ScheduleTable lays out a schedule as a table: one row per year, a rule,
// then the TOTAL row with a blank years-to-retirement cell.
func ScheduleTable(s model.Schedule, currency string) Table {
	rows := make([][]string, 0, len(s.Rows)+2)
	for _, r := range s.Rows {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.PeriodsRemaining),
			FormatMoney(r.Contribution, currency),
			FormatMoney(r.FutureValue, currency),
		})
	}
	rows = append(rows,
		[]string{Separator},
		[]string{
			TotalLabel,
			"",
			FormatMoney(s.Total.Contribution, currency),
			FormatMoney(s.Total.FutureValue, currency),
		},
	)

	return Table{
		Headers: ScheduleHeaders,
		Rows:    rows,
	}
}

// SummaryTable lays out the inputs and headline results of a plan.
func SummaryTable(p model.Plan, currency string) Table {
	in := p.Input
	return Table{
		Headers: []string{"Input", "Value"},
		Rows: [][]string{
			{"Goal (today's money)", FormatMoney(in.PresentValue, currency)},
			{"Horizon", FormatYears(in.Years)},
			{"Contributions", strconv.Itoa(in.StartYear) + "-" + strconv.Itoa(p.EndYear())},
			{"Inflation", FormatRate(in.InflationRate)},
			{"Investment return", FormatRate(in.InvestmentRate)},
		},
	}
}
