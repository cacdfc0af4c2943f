package attendance

import "errors"

var (
	ErrInvalidDate  = errors.New("invalid date format")
	ErrNoData       = errors.New("no data found in the attendance sheet")
	ErrNoRecords    = errors.New("no valid attendance records found")
	ErrUploadFailed = errors.New("failed to upload attendance image")
)
