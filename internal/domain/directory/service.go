package directory

import (
	"context"

	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
)

// DirectoryService serves the employee master sheet, both the full dropdown
// view (with Sites) and the shorter employee listing.
type DirectoryService interface {
	DropdownUsers(ctx context.Context) ([]rowtable.Record, error)
	Employees(ctx context.Context) ([]rowtable.Record, error)
}
