package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/directory"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
)

const (
	dropdownRange  = "ALL DOER NAMES RCC/DIMENSION!A:I"
	employeesRange = "ALL DOER NAMES RCC/DIMENSION!A:G"
)

var dropdownFallbackHeaders = []string{
	"Names",
	"EMP Code",
	"Mobile No.",
	"Email",
	"Leave Approval Manager",
	"Department",
	"Designation",
	"Sites",
}

// employeeHeaders is fixed: the shorter employee listing never trusts the
// sheet's header row.
var employeeHeaders = []string{
	"Names",
	"EMP Code",
	"Mobile No.",
	"Email",
	"Leave Approval Manager",
	"Department",
	"Designation",
}

type DirectoryServiceImpl struct {
	store sheetdb.Store
}

func NewDirectoryService(store sheetdb.Store) directory.DirectoryService {
	return &DirectoryServiceImpl{store: store}
}

// DropdownUsers implements directory.DirectoryService.
func (s *DirectoryServiceImpl) DropdownUsers(ctx context.Context) ([]rowtable.Record, error) {
	table, err := rowtable.Fetch(ctx, s.store, dropdownRange, dropdownFallbackHeaders)
	if err != nil {
		return nil, err
	}

	if _, ok := table.Column("Sites"); !ok {
		slog.Warn("Sites column not found in directory headers", "range", dropdownRange)
	}

	records := make([]rowtable.Record, 0, len(table.Records))
	allSitesBlank := true
	for _, rec := range table.Records {
		if rec["Names"] == "" {
			continue
		}
		if rec["Sites"] != "" {
			allSitesBlank = false
		}
		records = append(records, rec)
	}
	if len(records) > 0 && allSitesBlank {
		slog.Warn("Sites column is empty for all rows", "range", dropdownRange)
	}

	return records, nil
}

// Employees implements directory.DirectoryService.
func (s *DirectoryServiceImpl) Employees(ctx context.Context) ([]rowtable.Record, error) {
	rows, err := s.store.GetRange(ctx, employeesRange)
	if err != nil {
		return nil, fmt.Errorf("failed to read employees sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, rowtable.ErrEmptyTable
	}

	records := rowtable.Shape(rows[1:], employeeHeaders)
	if len(records) == 0 {
		return nil, directory.ErrNoRecords
	}
	return records, nil
}
