package leave

import (
	"context"

	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
)

type LeaveService interface {
	// List returns every non-empty leave request.
	List(ctx context.Context) ([]rowtable.Record, error)

	// Submit appends a new leave request row.
	Submit(ctx context.Context, req SubmitRequest) error

	// Approve overwrites the approval columns of the first row whose
	// employee code matches.
	Approve(ctx context.Context, req ApproveRequest) error
}
