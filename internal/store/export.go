// Package store reads and writes self-contained SQLite plan exports.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/nestegg/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNoPlan is returned when an export database holds no plan.
var ErrNoPlan = errors.New("export contains no plan")

// Export is an open plan export database.
type Export struct {
	db *sql.DB
}

// Meta holds export details that are not part of the plan itself.
type Meta struct {
	Currency  string
	CreatedAt time.Time
}

// Create creates a fresh export database at path, replacing any existing
// file, and writes the schema.
func Create(dbPath string) (*Export, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}
	for _, p := range []string{dbPath, dbPath + "-journal"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("replacing export: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("setting schema version: %w", err)
	}

	return &Export{db: db}, nil
}

// Open opens an existing export database for reading.
func Open(dbPath string) (*Export, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("opening export: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("reading schema version: %w", err)
	}
	if version != schemaVersion {
		_ = db.Close()
		return nil, fmt.Errorf("unsupported export schema version %d", version)
	}

	return &Export{db: db}, nil
}

// Close closes the export database.
func (e *Export) Close() error {
	return e.db.Close()
}

// SavePlan stores a plan and its schedule rows, replacing previous content.
func (e *Export) SavePlan(p model.Plan, currency string) error {
	tx, err := e.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM schedule_rows"); err != nil {
		return err
	}

	in := p.Input
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO plan
		(id, present_value, years, inflation_rate, investment_rate, start_year,
		 future_goal, contribution, tolerance, total_contribution, total_future_value,
		 currency, created_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.PresentValue, in.Years, in.InflationRate, in.InvestmentRate, in.StartYear,
		p.FutureGoal, p.Contribution, p.Tolerance,
		p.Schedule.Total.Contribution, p.Schedule.Total.FutureValue,
		currency, now,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO schedule_rows
		(period, year, periods_remaining, contribution, future_value)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range p.Schedule.Rows {
		if _, err := stmt.Exec(r.Period, r.Year, r.PeriodsRemaining, r.Contribution, r.FutureValue); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadPlan reads the stored plan and its schedule rows ordered by period.
func (e *Export) LoadPlan() (model.Plan, Meta, error) {
	var p model.Plan
	var meta Meta
	var created string

	err := e.db.QueryRow(`SELECT
		present_value, years, inflation_rate, investment_rate, start_year,
		future_goal, contribution, tolerance, total_contribution, total_future_value,
		currency, created_at
		FROM plan WHERE id = 1`).Scan(
		&p.Input.PresentValue, &p.Input.Years, &p.Input.InflationRate, &p.Input.InvestmentRate, &p.Input.StartYear,
		&p.FutureGoal, &p.Contribution, &p.Tolerance,
		&p.Schedule.Total.Contribution, &p.Schedule.Total.FutureValue,
		&meta.Currency, &created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return p, meta, ErrNoPlan
	}
	if err != nil {
		return p, meta, err
	}
	meta.CreatedAt, _ = time.Parse(time.RFC3339, created)

	rows, err := e.db.Query(`SELECT period, year, periods_remaining, contribution, future_value
		FROM schedule_rows ORDER BY period`)
	if err != nil {
		return p, meta, err
	}
	defer func() { _ = rows.Close() }()

	p.Schedule.Rows = make([]model.ScheduleRow, 0, p.Input.Years)
	for rows.Next() {
		var r model.ScheduleRow
		if err := rows.Scan(&r.Period, &r.Year, &r.PeriodsRemaining, &r.Contribution, &r.FutureValue); err != nil {
			return p, meta, err
		}
		p.Schedule.Rows = append(p.Schedule.Rows, r)
	}
	return p, meta, rows.Err()
}
