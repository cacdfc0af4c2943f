// Package rowtable turns raw rectangular ranges from the tabular store into
// header-named records. It is the read path for every endpoint.
package rowtable

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
)

// ErrEmptyTable is returned when the range holds no rows at all.
var ErrEmptyTable = errors.New("no rows in range")

// SchemaError reports required columns missing from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing columns: " + strings.Join(e.Missing, ", ")
}

// HeaderSource records which way the header decision went, so callers and
// tests can assert on it instead of guessing from the field names.
type HeaderSource int

const (
	HeaderInferred HeaderSource = iota
	HeaderFallback
)

// Record maps header name to trimmed cell value.
type Record map[string]string

type Table struct {
	Headers      []string
	HeaderSource HeaderSource
	Records      []Record
}

// Fetch reads the range and shapes its rows into records. Row 0 is the
// header candidate; when it is empty or any cell in it is blank, the
// fallback list is substituted verbatim. Every value is trimmed, missing
// cells become empty strings, and records whose every field is empty are
// dropped. Row order is preserved.
func Fetch(ctx context.Context, store sheetdb.Store, ref string, fallback []string) (Table, error) {
	rows, err := store.GetRange(ctx, ref)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read range %s: %w", ref, err)
	}
	if len(rows) == 0 {
		return Table{}, ErrEmptyTable
	}

	headers, source := inferHeaders(rows[0], fallback)
	if source == HeaderFallback {
		slog.Warn("using fallback headers for range", "range", ref)
	}

	return Table{
		Headers:      headers,
		HeaderSource: source,
		Records:      Shape(rows[1:], headers),
	}, nil
}

// Shape maps data rows onto the given headers, trimming values and dropping
// records where every field is empty.
func Shape(rows [][]string, headers []string) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(headers))
		empty := true
		for i, header := range headers {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			rec[header] = value
			if value != "" {
				empty = false
			}
		}
		if !empty {
			records = append(records, rec)
		}
	}
	return records
}

// RequireColumns fails with a SchemaError naming every listed column that is
// absent from the header set. Matching is case-insensitive.
func (t Table) RequireColumns(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := t.Column(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// Column resolves a case-insensitive column name to the actual header.
func (t Table) Column(name string) (string, bool) {
	for _, header := range t.Headers {
		if strings.EqualFold(header, name) {
			return header, true
		}
	}
	return "", false
}

func inferHeaders(candidate []string, fallback []string) ([]string, HeaderSource) {
	if len(candidate) == 0 {
		return append([]string(nil), fallback...), HeaderFallback
	}
	trimmed := make([]string, len(candidate))
	for i, cell := range candidate {
		trimmed[i] = strings.TrimSpace(cell)
		if trimmed[i] == "" {
			return append([]string(nil), fallback...), HeaderFallback
		}
	}
	return trimmed, HeaderInferred
}
