package sheetdb

import (
	"context"
	"errors"
)

// Store is the external tabular store behind every endpoint. Ranges use A1
// notation with a sheet prefix, e.g. "Attendance!A:I" or "LeaveFrom!A5:N5".
type Store interface {
	// GetRange returns every populated row inside the range, trailing empty
	// rows excluded. Rows may be shorter than the range width.
	GetRange(ctx context.Context, ref string) ([][]string, error)

	// AppendRow appends a row after the last populated row of the range.
	AppendRow(ctx context.Context, ref string, row []string) error

	// UpdateRow overwrites the row at the absolute position named by the
	// range, which must carry an explicit row number.
	UpdateRow(ctx context.Context, ref string, row []string) error

	// SheetExists reports whether a sheet with the given title exists.
	SheetExists(ctx context.Context, title string) (bool, error)
}

var (
	ErrRangeUnparseable = errors.New("unable to parse range")
	ErrPermissionDenied = errors.New("permission denied by store")
	ErrSheetNotFound    = errors.New("sheet not found")
)
