package attendance

import (
	"context"

	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
)

type AttendanceService interface {
	// List returns the records whose timestamp falls on the filter's day.
	List(ctx context.Context, filter ListFilter) ([]rowtable.Record, error)

	// ListAll returns every non-empty attendance record.
	ListAll(ctx context.Context) ([]rowtable.Record, error)

	// Submit appends a new attendance row, uploading the photo first when
	// one is attached.
	Submit(ctx context.Context, req SubmitRequest) error
}
