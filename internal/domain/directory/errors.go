package directory

import "errors"

// ErrNoRecords means the range had rows but nothing survived the empty-row
// filter.
var ErrNoRecords = errors.New("no valid records found")
