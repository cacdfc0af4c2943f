package sheetdb

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store used by tests. Sheets are keyed by title.
type MemStore struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

func NewMemStore(sheets map[string][][]string) *MemStore {
	copied := make(map[string][][]string, len(sheets))
	for title, rows := range sheets {
		copied[title] = copyRows(rows)
	}
	return &MemStore{sheets: copied}
}

// GetRange implements Store.
func (s *MemStore) GetRange(ctx context.Context, ref string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rr, err := ParseRangeRef(ref)
	if err != nil {
		return nil, err
	}
	rows, ok := s.sheets[rr.Sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}
	return copyRows(sliceRows(rows, rr)), nil
}

// AppendRow implements Store.
func (s *MemStore) AppendRow(ctx context.Context, ref string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rr, err := ParseRangeRef(ref)
	if err != nil {
		return err
	}
	rows, ok := s.sheets[rr.Sheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}
	s.sheets[rr.Sheet] = append(rows, append([]string(nil), row...))
	return nil
}

// UpdateRow implements Store.
func (s *MemStore) UpdateRow(ctx context.Context, ref string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rr, err := ParseRangeRef(ref)
	if err != nil {
		return err
	}
	if rr.StartRow == 0 {
		return fmt.Errorf("%w: update needs an explicit row in %q", ErrRangeUnparseable, ref)
	}
	rows, ok := s.sheets[rr.Sheet]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}
	for len(rows) < rr.StartRow {
		rows = append(rows, nil)
	}

	target := append([]string(nil), rows[rr.StartRow-1]...)
	for i, cell := range row {
		col := rr.StartCol + i
		for len(target) <= col {
			target = append(target, "")
		}
		target[col] = cell
	}
	rows[rr.StartRow-1] = target
	s.sheets[rr.Sheet] = rows
	return nil
}

// SheetExists implements Store.
func (s *MemStore) SheetExists(ctx context.Context, title string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sheets[title]
	return ok, nil
}

// Rows returns a copy of a sheet's current contents, for test assertions.
func (s *MemStore) Rows(title string) [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRows(s.sheets[title])
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
