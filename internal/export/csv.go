package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/nestegg/internal/model"
)

var csvHeader = []string{
	"Year",
	"Years to Retirement",
	"Annual Contribution",
	"Future Value at Retirement",
}

const totalLabel = "TOTAL"

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeCSV(path string, p model.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export: %w", err)
	}

	if err := encodeCSV(f, p.Schedule); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing export: %w", err)
	}
	return f.Close()
}

func encodeCSV(w io.Writer, s model.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range s.Rows {
		rec := []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.PeriodsRemaining),
			formatAmount(r.Contribution),
			formatAmount(r.FutureValue),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{
		totalLabel,
		"",
		formatAmount(s.Total.Contribution),
		formatAmount(s.Total.FutureValue),
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func readCSV(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()

	s, err := decodeCSV(f)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	p := model.Plan{Schedule: s}
	if n := len(s.Rows); n > 0 {
		p.Input.Years = n
		p.Input.StartYear = s.Rows[0].Year
		p.Contribution = s.Rows[0].Contribution
		p.FutureGoal = s.Total.FutureValue
		// adjacent rows differ by one period of growth
		if n > 1 && s.Rows[1].FutureValue > 0 {
			p.Input.InvestmentRate = s.Rows[0].FutureValue/s.Rows[1].FutureValue - 1
		}
	}

	return Document{
		Plan:    p,
		Format:  FormatCSV,
		Partial: true,
	}, nil
}

func decodeCSV(r io.Reader) (model.Schedule, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return model.Schedule{}, fmt.Errorf("reading header: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(header[0]), csvHeader[0]) {
		return model.Schedule{}, fmt.Errorf("unexpected header %q", header)
	}

	var s model.Schedule
	sawTotal := false
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.Schedule{}, err
		}
		if sawTotal {
			return model.Schedule{}, errors.New("rows after TOTAL")
		}

		if rec[0] == totalLabel {
			contrib, fv, err := parseAmounts(rec[2], rec[3])
			if err != nil {
				return model.Schedule{}, fmt.Errorf("TOTAL row: %w", err)
			}
			s.Total = model.ScheduleTotal{Contribution: contrib, FutureValue: fv}
			sawTotal = true
			continue
		}

		year, err := strconv.Atoi(rec[0])
		if err != nil {
			return model.Schedule{}, fmt.Errorf("row %d year: %w", len(s.Rows)+1, err)
		}
		remaining, err := strconv.Atoi(rec[1])
		if err != nil {
			return model.Schedule{}, fmt.Errorf("row %d years to retirement: %w", len(s.Rows)+1, err)
		}
		contrib, fv, err := parseAmounts(rec[2], rec[3])
		if err != nil {
			return model.Schedule{}, fmt.Errorf("row %d: %w", len(s.Rows)+1, err)
		}
		s.Rows = append(s.Rows, model.ScheduleRow{
			Period:           len(s.Rows),
			Year:             year,
			PeriodsRemaining: remaining,
			Contribution:     contrib,
			FutureValue:      fv,
		})
	}
	if !sawTotal {
		return model.Schedule{}, errors.New("missing TOTAL row")
	}
	return s, nil
}

func parseAmounts(contrib, fv string) (float64, float64, error) {
	c, err := strconv.ParseFloat(contrib, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("contribution: %w", err)
	}
	v, err := strconv.ParseFloat(fv, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("future value: %w", err)
	}
	return c, v, nil
}
