package attendance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/attendance"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/dates"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/imagestore"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
)

const attendanceRange = "Attendance!A:I"

var attendanceFallbackHeaders = []string{
	"Timestamp",
	"Email",
	"Name",
	"EmpCode",
	"Site",
	"EntryType",
	"WorkShift",
	"LocationName",
	"ImageUrl",
}

type AttendanceServiceImpl struct {
	store    sheetdb.Store
	uploader imagestore.Uploader
	now      func() time.Time
}

func NewAttendanceService(store sheetdb.Store, uploader imagestore.Uploader) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		store:    store,
		uploader: uploader,
		now:      time.Now,
	}
}

// List implements attendance.AttendanceService. Records are matched against
// the day window [midnight, midnight+24h) in server-local time.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]rowtable.Record, error) {
	day := s.now()
	if filter.Date != "" {
		parsed, err := dates.ParseDay(filter.Date)
		if err != nil {
			return nil, attendance.ErrInvalidDate
		}
		day = parsed
	}
	start, end := dates.DayWindow(day)

	table, err := rowtable.Fetch(ctx, s.store, attendanceRange, attendanceFallbackHeaders)
	if err != nil {
		if errors.Is(err, rowtable.ErrEmptyTable) {
			return nil, attendance.ErrNoData
		}
		return nil, err
	}
	if err := table.RequireColumns("Email", "Timestamp", "EntryType", "Site"); err != nil {
		return nil, err
	}

	// Headers may differ in casing from the canonical names.
	emailCol, _ := table.Column("Email")
	timestampCol, _ := table.Column("Timestamp")

	matched := make([]rowtable.Record, 0, len(table.Records))
	for _, rec := range table.Records {
		ts, err := dates.ParseSheetTimestamp(rec[timestampCol])
		if err != nil {
			continue
		}
		if ts.Before(start) || !ts.Before(end) {
			continue
		}
		if filter.Email != "" && !strings.EqualFold(rec[emailCol], filter.Email) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched, nil
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context) ([]rowtable.Record, error) {
	table, err := rowtable.Fetch(ctx, s.store, attendanceRange, attendanceFallbackHeaders)
	if err != nil {
		if errors.Is(err, rowtable.ErrEmptyTable) {
			return nil, attendance.ErrNoData
		}
		return nil, err
	}
	if len(table.Records) == 0 {
		return nil, attendance.ErrNoRecords
	}
	return table.Records, nil
}

// Submit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitRequest) error {
	imageURL := ""
	if req.Image != "" {
		name := fmt.Sprintf("attendance_%s_%d", req.Email, s.now().UnixMilli())
		url, err := s.uploader.UploadBase64(ctx, req.Image, name)
		if err != nil {
			return fmt.Errorf("%w: %v", attendance.ErrUploadFailed, err)
		}
		imageURL = url
	}

	row := []string{
		dates.SheetTimestamp(s.now()),
		req.Email,
		req.Name,
		req.EmpCode,
		req.Site,
		req.EntryType,
		req.WorkShift,
		req.LocationName,
		imageURL,
	}
	if err := s.store.AppendRow(ctx, attendanceRange, row); err != nil {
		return fmt.Errorf("failed to append attendance row: %w", err)
	}
	return nil
}
