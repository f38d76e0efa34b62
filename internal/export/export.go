// Package export writes a computed plan to a file and reads it back. The
// format is chosen by file extension.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/nestegg/internal/model"
	"github.com/theirongolddev/nestegg/internal/store"
)

// ErrUnsupportedFormat is returned for paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format identifies an export file format.
type Format int

const (
	FormatCSV Format = iota + 1
	FormatSQLite
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// Document is a plan read back from an export.
type Document struct {
	Plan     model.Plan
	Currency string
	Format   Format

	// CreatedAt is when the export was written; zero for formats that do
	// not record it.
	CreatedAt time.Time

	// Partial is set when the format does not carry the plan inputs, so
	// only the schedule and the values derivable from it are populated.
	Partial bool
}

// DetectFormat maps a path's extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return 0, fmt.Errorf("%w: %q (use .csv, .db or .sqlite)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Write exports p to path in the format implied by its extension.
func Write(path string, p model.Plan, currency string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		return writeCSV(path, p)
	default:
		return writeSQLite(path, p, currency)
	}
}

// Read loads an export written by Write.
func Read(path string) (Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Document{}, err
	}

	switch format {
	case FormatCSV:
		return readCSV(path)
	default:
		return readSQLite(path)
	}
}

func writeSQLite(path string, p model.Plan, currency string) error {
	e, err := store.Create(path)
	if err != nil {
		return err
	}
	if err := e.SavePlan(p, currency); err != nil {
		_ = e.Close()
		return fmt.Errorf("writing export: %w", err)
	}
	return e.Close()
}

func readSQLite(path string) (Document, error) {
	e, err := store.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer e.Close()

	p, meta, err := e.LoadPlan()
	if err != nil {
		return Document{}, fmt.Errorf("reading export: %w", err)
	}
	return Document{
		Plan:      p,
		Currency:  meta.Currency,
		Format:    FormatSQLite,
		CreatedAt: meta.CreatedAt,
	}, nil
}
