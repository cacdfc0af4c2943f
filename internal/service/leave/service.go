package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/leave"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/dates"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
)

const (
	leaveSheet = "LeaveFrom"

	// Submissions write A:K; approvals read and write the wider A:N so the
	// status, day and timestamp columns (L-N) are covered.
	leaveRange        = "LeaveFrom!A:K"
	leaveApprovalCols = 14

	empCodeHeader = "EMPCODE"

	approvedStatusIndex    = 11
	approvedDaysIndex      = 12
	approvedTimestampIndex = 13
)

var leaveFallbackHeaders = []string{
	"TIMESTAMP",
	"NAME",
	"EMPCODE",
	"DEPARTMENT",
	"DATEFROM",
	"DATETO",
	"SHIFT",
	"TYPEOFLEAVE",
	"REASON",
	"APPROVEDDAY",
	"APPROVALMANAGER",
}

type LeaveServiceImpl struct {
	store sheetdb.Store
	now   func() time.Time

	// Approvals are read-modify-write against a store that does not
	// serialize writers, so they are serialized here per employee code.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLeaveService(store sheetdb.Store) leave.LeaveService {
	return &LeaveServiceImpl{
		store: store,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]rowtable.Record, error) {
	table, err := rowtable.Fetch(ctx, s.store, leaveRange, leaveFallbackHeaders)
	if err != nil {
		if errors.Is(err, rowtable.ErrEmptyTable) {
			return nil, leave.ErrNoData
		}
		return nil, err
	}
	if len(table.Records) == 0 {
		return nil, leave.ErrNoRecords
	}
	return table.Records, nil
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) error {
	exists, err := s.store.SheetExists(ctx, leaveSheet)
	if err != nil {
		return fmt.Errorf("failed to check leave sheet: %w", err)
	}
	if !exists {
		return leave.ErrSheetMissing
	}

	// The client computes the day count; flag mismatches but trust its value.
	if calc := dates.CalculateLeaveDays(req.FromDate, req.ToDate, req.Shift); calc != "" && calc != req.Days {
		slog.Warn("submitted leave days disagree with calculated span",
			"empCode", req.EmpCode,
			"submitted", req.Days,
			"calculated", calc,
		)
	}

	row := []string{
		dates.SheetTimestamp(s.now()),
		req.Name,
		req.EmpCode,
		req.Department,
		req.FromDate,
		req.ToDate,
		req.Shift,
		req.TypeOfLeave,
		req.Reason,
		req.Days,
		req.ApprovalManager,
	}
	if err := s.store.AppendRow(ctx, leaveRange, row); err != nil {
		return fmt.Errorf("failed to append leave row: %w", err)
	}
	return nil
}

// Approve implements leave.LeaveService. The first data row whose EMPCODE
// matches is rewritten in place with the new status, day count, and
// approval timestamp.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveRequest) error {
	unlock := s.lockCode(req.EmpCode)
	defer unlock()

	readRange := fmt.Sprintf("%s!A:N", leaveSheet)
	rows, err := s.store.GetRange(ctx, readRange)
	if err != nil {
		return fmt.Errorf("failed to read leave sheet: %w", err)
	}
	if len(rows) == 0 {
		return leave.ErrNoData
	}

	empCodeIndex := -1
	for i, header := range rows[0] {
		if strings.TrimSpace(header) == empCodeHeader {
			empCodeIndex = i
			break
		}
	}
	if empCodeIndex == -1 {
		return leave.ErrEmpCodeColumnMissing
	}

	rowNumber := -1
	var current []string
	for i, row := range rows[1:] {
		if empCodeIndex < len(row) && strings.TrimSpace(row[empCodeIndex]) == req.EmpCode {
			rowNumber = i + 2 // +1 for the header, +1 for one-based rows
			current = row
			break
		}
	}
	if rowNumber == -1 {
		return fmt.Errorf("%w: %s", leave.ErrNoMatchingRow, req.EmpCode)
	}

	updated := make([]string, leaveApprovalCols)
	copy(updated, current)
	updated[approvedStatusIndex] = req.Approved
	updated[approvedDaysIndex] = strconv.FormatFloat(*req.LeaveDays, 'f', -1, 64)
	updated[approvedTimestampIndex] = dates.SheetTimestamp(s.now())

	writeRange := fmt.Sprintf("%s!A%d:N%d", leaveSheet, rowNumber, rowNumber)
	if err := s.store.UpdateRow(ctx, writeRange, updated); err != nil {
		return fmt.Errorf("failed to update leave row: %w", err)
	}
	return nil
}

func (s *LeaveServiceImpl) lockCode(code string) func() {
	s.mu.Lock()
	lock, ok := s.locks[code]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[code] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
