// Package dates holds the date formats this system lives with: DD/MM/YYYY
// in leave forms, ISO dates in query strings, and the zero-padded timestamp
// written to sheet rows.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SheetTimestampLayout is the format of every timestamp column in the store.
const SheetTimestampLayout = "2006-01-02 15:04:05.000"

const ddmmyyyyLayout = "02/01/2006"

// SheetTimestamp formats t the way rows are appended: UTC, millisecond
// precision, zero-padded.
func SheetTimestamp(t time.Time) string {
	return t.UTC().Format(SheetTimestampLayout)
}

// ParseSheetTimestamp parses a timestamp cell. Older rows were written by
// hand in a few shapes, so a couple of looser layouts are accepted.
func ParseSheetTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{
		SheetTimestampLayout,
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ParseDDMMYYYY parses a DD/MM/YYYY date.
func ParseDDMMYYYY(s string) (time.Time, error) {
	return time.ParseInLocation(ddmmyyyyLayout, strings.TrimSpace(s), time.Local)
}

// FormatDDMMYYYY renders t as DD/MM/YYYY.
func FormatDDMMYYYY(t time.Time) string {
	return t.Format(ddmmyyyyLayout)
}

// ParseDay accepts an ISO (YYYY-MM-DD) or DD/MM/YYYY date.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := ParseDDMMYYYY(s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// DayWindow returns [midnight, midnight+24h) around t in server-local time.
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

// CalculateLeaveDays computes the day count of a leave span given DD/MM/YYYY
// bounds and the chosen shift label. It mirrors what the form shows the
// applicant: empty when either bound is missing, unparseable, or from is
// after to; "0.5" for a single-day half-day leave; otherwise the inclusive
// day count.
func CalculateLeaveDays(fromDate, toDate, shift string) string {
	if fromDate == "" || toDate == "" {
		return ""
	}

	from, err := ParseDDMMYYYY(fromDate)
	if err != nil {
		return ""
	}
	to, err := ParseDDMMYYYY(toDate)
	if err != nil {
		return ""
	}
	if from.After(to) {
		return ""
	}

	if fromDate == toDate && isHalfDay(shift) {
		return "0.5"
	}

	days := int(to.Sub(from).Hours()/24) + 1
	return strconv.Itoa(days)
}

// Shift labels come from the form in English or Hindi.
func isHalfDay(shift string) bool {
	return strings.Contains(shift, "Half day") || strings.Contains(shift, "आधा दिन")
}
