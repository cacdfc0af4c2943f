package sheetdb

import (
	"context"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

// XLSXStore keeps the whole "database" in a local workbook file. It exists
// for development and tests, where pointing at a real Google spreadsheet is
// overkill. Writes are flushed to disk immediately.
type XLSXStore struct {
	mu   sync.Mutex
	file *excelize.File
}

func NewXLSXStore(path string) (*XLSXStore, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &XLSXStore{file: f}, nil
}

// Close releases the underlying workbook.
func (s *XLSXStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// GetRange implements Store.
func (s *XLSXStore) GetRange(ctx context.Context, ref string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rr, rows, err := s.sheetRows(ref)
	if err != nil {
		return nil, err
	}
	return sliceRows(rows, rr), nil
}

// AppendRow implements Store.
func (s *XLSXStore) AppendRow(ctx context.Context, ref string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rr, rows, err := s.sheetRows(ref)
	if err != nil {
		return err
	}

	cell, err := excelize.CoordinatesToCellName(rr.StartCol+1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRangeUnparseable, err)
	}
	if err := s.file.SetSheetRow(rr.Sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return s.file.Save()
}

// UpdateRow implements Store.
func (s *XLSXStore) UpdateRow(ctx context.Context, ref string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rr, err := ParseRangeRef(ref)
	if err != nil {
		return err
	}
	if rr.StartRow == 0 {
		return fmt.Errorf("%w: update needs an explicit row in %q", ErrRangeUnparseable, ref)
	}
	if idx, err := s.file.GetSheetIndex(rr.Sheet); err != nil || idx == -1 {
		return fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}

	cell, err := excelize.CoordinatesToCellName(rr.StartCol+1, rr.StartRow)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRangeUnparseable, err)
	}
	if err := s.file.SetSheetRow(rr.Sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return s.file.Save()
}

// SheetExists implements Store.
func (s *XLSXStore) SheetExists(ctx context.Context, title string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.file.GetSheetIndex(title)
	if err != nil {
		return false, err
	}
	return idx != -1, nil
}

func (s *XLSXStore) sheetRows(ref string) (RangeRef, [][]string, error) {
	rr, err := ParseRangeRef(ref)
	if err != nil {
		return RangeRef{}, nil, err
	}
	if idx, err := s.file.GetSheetIndex(rr.Sheet); err != nil || idx == -1 {
		return RangeRef{}, nil, fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}
	rows, err := s.file.GetRows(rr.Sheet)
	if err != nil {
		return RangeRef{}, nil, fmt.Errorf("failed to read sheet %s: %w", rr.Sheet, err)
	}
	return rr, rows, nil
}
