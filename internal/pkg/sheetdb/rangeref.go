package sheetdb

import (
	"fmt"
	"strings"
)

// RangeRef is a parsed A1-notation range. Columns are zero-based, rows are
// one-based; a zero row bound means the range is unbounded on that side.
type RangeRef struct {
	Sheet    string
	StartCol int
	EndCol   int
	StartRow int
	EndRow   int
}

// Width returns the number of columns the range spans.
func (r RangeRef) Width() int {
	return r.EndCol - r.StartCol + 1
}

// ParseRangeRef parses references of the form "Sheet!A:I", "Sheet!A2:N2" or
// "'Sheet Name'!A:C". The local store implementations share it; the Google
// implementation hands the raw reference to the API instead.
func ParseRangeRef(ref string) (RangeRef, error) {
	sheet, cells, ok := strings.Cut(ref, "!")
	if !ok || sheet == "" || cells == "" {
		return RangeRef{}, fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}
	sheet = strings.TrimSuffix(strings.TrimPrefix(sheet, "'"), "'")

	start, end, ok := strings.Cut(cells, ":")
	if !ok {
		end = start
	}

	startCol, startRow, err := parseCell(start)
	if err != nil {
		return RangeRef{}, fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}
	endCol, endRow, err := parseCell(end)
	if err != nil {
		return RangeRef{}, fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}
	if endCol < startCol || (startRow > 0 && endRow > 0 && endRow < startRow) {
		return RangeRef{}, fmt.Errorf("%w: %q", ErrRangeUnparseable, ref)
	}

	return RangeRef{
		Sheet:    sheet,
		StartCol: startCol,
		EndCol:   endCol,
		StartRow: startRow,
		EndRow:   endRow,
	}, nil
}

// parseCell splits "A5" into a zero-based column and one-based row. A bare
// column reference like "A" yields row 0.
func parseCell(cell string) (col int, row int, err error) {
	i := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		col = col*26 + int(cell[i]-'A'+1)
		i++
	}
	if col == 0 {
		return 0, 0, fmt.Errorf("no column letters in %q", cell)
	}
	col--

	for ; i < len(cell); i++ {
		if cell[i] < '0' || cell[i] > '9' {
			return 0, 0, fmt.Errorf("bad cell %q", cell)
		}
		row = row*10 + int(cell[i]-'0')
	}
	return col, row, nil
}

// sliceRows applies the range's row and column windows to a full sheet.
func sliceRows(rows [][]string, rr RangeRef) [][]string {
	if rr.StartRow > 0 {
		if rr.StartRow > len(rows) {
			return nil
		}
		upper := len(rows)
		if rr.EndRow > 0 && rr.EndRow < upper {
			upper = rr.EndRow
		}
		rows = rows[rr.StartRow-1 : upper]
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if rr.StartCol >= len(row) {
			out = append(out, nil)
			continue
		}
		upper := len(row)
		if rr.EndCol+1 < upper {
			upper = rr.EndCol + 1
		}
		out = append(out, row[rr.StartCol:upper])
	}

	// The Sheets API omits trailing empty rows; mirror that here.
	for len(out) > 0 && rowEmpty(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
