package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/attendance"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	url      string
	err      error
	lastName string
}

func (f *fakeUploader) UploadBase64(ctx context.Context, base64Image, name string) (string, error) {
	f.lastName = name
	return f.url, f.err
}

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

func newService(rows [][]string, up *fakeUploader) (*AttendanceServiceImpl, *sheetdb.MemStore) {
	store := sheetdb.NewMemStore(map[string][][]string{"Attendance": rows})
	if up == nil {
		up = &fakeUploader{}
	}
	return &AttendanceServiceImpl{
		store:    store,
		uploader: up,
		now:      func() time.Time { return testNow },
	}, store
}

func attendanceHeader() []string {
	return []string{"Timestamp", "Email", "Name", "EmpCode", "Site", "EntryType", "WorkShift", "LocationName", "ImageUrl"}
}

func TestList_FiltersByDayWindow(t *testing.T) {
	svc, _ := newService([][]string{
		attendanceHeader(),
		{"2025-06-15 08:00:00.000", "asha@x.com", "Asha", "E-1", "RCC", "Check-In", "Day", "Gate 1", ""},
		{"2025-06-14 08:00:00.000", "asha@x.com", "Asha", "E-1", "RCC", "Check-In", "Day", "Gate 1", ""},
		{"2025-06-16 00:00:00.000", "asha@x.com", "Asha", "E-1", "RCC", "Check-In", "Day", "Gate 1", ""},
	}, nil)

	records, err := svc.List(context.Background(), attendance.ListFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-06-15 08:00:00.000", records[0]["Timestamp"])
}

func TestList_EmailFilterIsCaseInsensitive(t *testing.T) {
	svc, _ := newService([][]string{
		attendanceHeader(),
		{"2025-06-15 08:00:00.000", "Asha@X.com", "Asha", "E-1", "RCC", "Check-In", "Day", "Gate 1", ""},
		{"2025-06-15 09:00:00.000", "ravi@x.com", "Ravi", "E-2", "RCC", "Check-In", "Day", "Gate 1", ""},
	}, nil)

	records, err := svc.List(context.Background(), attendance.ListFilter{Email: "asha@x.com"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Asha", records[0]["Name"])
}

func TestList_ExplicitDate(t *testing.T) {
	svc, _ := newService([][]string{
		attendanceHeader(),
		{"2025-06-14 08:00:00.000", "asha@x.com", "Asha", "E-1", "RCC", "Check-In", "Day", "Gate 1", ""},
	}, nil)

	for _, date := range []string{"2025-06-14", "14/06/2025"} {
		records, err := svc.List(context.Background(), attendance.ListFilter{Date: date})
		require.NoError(t, err, date)
		assert.Len(t, records, 1, date)
	}
}

func TestList_BadDate(t *testing.T) {
	svc, _ := newService([][]string{attendanceHeader()}, nil)
	_, err := svc.List(context.Background(), attendance.ListFilter{Date: "not-a-date"})
	assert.ErrorIs(t, err, attendance.ErrInvalidDate)
}

func TestList_MissingColumns(t *testing.T) {
	svc, _ := newService([][]string{
		{"Timestamp", "Email", "Name"},
		{"2025-06-15 08:00:00.000", "asha@x.com", "Asha"},
	}, nil)

	_, err := svc.List(context.Background(), attendance.ListFilter{})
	var schemaErr *rowtable.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"EntryType", "Site"}, schemaErr.Missing)
}

func TestList_EmptySheet(t *testing.T) {
	svc, _ := newService(nil, nil)
	_, err := svc.List(context.Background(), attendance.ListFilter{})
	assert.ErrorIs(t, err, attendance.ErrNoData)
}

func TestSubmit_AppendsRowWithoutImage(t *testing.T) {
	svc, store := newService([][]string{attendanceHeader()}, nil)

	err := svc.Submit(context.Background(), attendance.SubmitRequest{
		Email:        "asha@x.com",
		Name:         "Asha",
		EmpCode:      "E-1",
		Site:         "RCC",
		EntryType:    "Check-In",
		WorkShift:    "Day",
		LocationName: "Gate 1",
	})
	require.NoError(t, err)

	rows := store.Rows("Attendance")
	require.Len(t, rows, 2)
	appended := rows[1]
	assert.Equal(t, "asha@x.com", appended[1])
	assert.Equal(t, "Gate 1", appended[7])
	assert.Equal(t, "", appended[8], "image url stays empty without an image")
}

func TestSubmit_UploadsImageFirst(t *testing.T) {
	up := &fakeUploader{url: "https://img.example/a.jpg"}
	svc, store := newService([][]string{attendanceHeader()}, up)

	err := svc.Submit(context.Background(), attendance.SubmitRequest{
		Email:        "asha@x.com",
		Name:         "Asha",
		EmpCode:      "E-1",
		Site:         "RCC",
		EntryType:    "Check-In",
		WorkShift:    "Day",
		LocationName: "Gate 1",
		Image:        "aGVsbG8=",
	})
	require.NoError(t, err)

	assert.Contains(t, up.lastName, "attendance_asha@x.com_")
	rows := store.Rows("Attendance")
	assert.Equal(t, "https://img.example/a.jpg", rows[1][8])
}

func TestSubmit_UploadFailure(t *testing.T) {
	up := &fakeUploader{err: errors.New("cloud down")}
	svc, store := newService([][]string{attendanceHeader()}, up)

	err := svc.Submit(context.Background(), attendance.SubmitRequest{
		Email:        "asha@x.com",
		Name:         "Asha",
		EmpCode:      "E-1",
		Site:         "RCC",
		EntryType:    "Check-In",
		WorkShift:    "Day",
		LocationName: "Gate 1",
		Image:        "aGVsbG8=",
	})
	assert.ErrorIs(t, err, attendance.ErrUploadFailed)
	assert.Len(t, store.Rows("Attendance"), 1, "no row appended on upload failure")
}

func TestListAll_ReturnsEveryRecord(t *testing.T) {
	svc, _ := newService([][]string{
		attendanceHeader(),
		{"2025-06-14 08:00:00.000", "asha@x.com", "Asha", "E-1", "RCC", "Check-In", "Day", "Gate 1", ""},
		{"2025-06-15 08:00:00.000", "ravi@x.com", "Ravi", "E-2", "RCC", "Check-Out", "Day", "Gate 2", ""},
	}, nil)

	records, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListAll_NoValidRows(t *testing.T) {
	svc, _ := newService([][]string{attendanceHeader()}, nil)
	_, err := svc.ListAll(context.Background())
	assert.ErrorIs(t, err, attendance.ErrNoRecords)
}
