package leave

import "errors"

var (
	ErrSheetMissing         = errors.New("leave sheet does not exist in the spreadsheet")
	ErrEmpCodeColumnMissing = errors.New("EMPCODE column not found in sheet")
	ErrNoMatchingRow        = errors.New("no matching row found for employee code")
	ErrNoData               = errors.New("no data found in the leave sheet")
	ErrNoRecords            = errors.New("no valid leave records found")
)
