package response

import (
	"errors"
	"net/http"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/attendance"
	"github.com/rcc-dimension/attendance-backend-go/internal/domain/auth"
	"github.com/rcc-dimension/attendance-backend-go/internal/domain/directory"
	"github.com/rcc-dimension/attendance-backend-go/internal/domain/leave"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/sheetdb"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain and store errors onto HTTP responses. Handlers
// call it as their single error exit so status codes stay consistent
// across endpoints.
func HandleError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		Error(w, http.StatusBadRequest, verrs.Error())
		return
	}

	var schemaErr *rowtable.SchemaError
	if errors.As(err, &schemaErr) {
		ErrorWithDetails(w, http.StatusBadRequest, "Invalid sheet structure", schemaErr.Error())
		return
	}

	switch {
	case errors.Is(err, auth.ErrNoUsers):
		Error(w, http.StatusBadRequest, "No users found in the sheet")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidUserType):
		Error(w, http.StatusBadRequest, "Invalid userType")
	case errors.Is(err, auth.ErrNoToken):
		Error(w, http.StatusUnauthorized, "No token")
	case errors.Is(err, auth.ErrInvalidToken):
		Error(w, http.StatusUnauthorized, "Invalid token")

	case errors.Is(err, attendance.ErrInvalidDate):
		Error(w, http.StatusBadRequest, "Invalid date format")
	case errors.Is(err, attendance.ErrUploadFailed):
		ErrorWithDetails(w, http.StatusInternalServerError, "Failed to upload image", err.Error())
	case errors.Is(err, attendance.ErrNoData):
		Error(w, http.StatusNotFound, "No data found in the sheet")
	case errors.Is(err, attendance.ErrNoRecords):
		Error(w, http.StatusNotFound, "No valid data found starting from row 2")

	case errors.Is(err, leave.ErrSheetMissing):
		ErrorWithDetails(w, http.StatusBadRequest, "Invalid spreadsheet configuration", err.Error())
	case errors.Is(err, leave.ErrEmpCodeColumnMissing):
		Error(w, http.StatusBadRequest, "EMPCODE column not found in sheet")
	case errors.Is(err, leave.ErrNoMatchingRow):
		ErrorWithDetails(w, http.StatusNotFound, "No matching row found for EMPCODE", err.Error())
	case errors.Is(err, leave.ErrNoData):
		Error(w, http.StatusNotFound, "No data found in the sheet")
	case errors.Is(err, leave.ErrNoRecords):
		Error(w, http.StatusNotFound, "No valid data found starting from row 2")

	case errors.Is(err, directory.ErrNoRecords):
		Error(w, http.StatusNotFound, "No valid data found starting from row 2")
	case errors.Is(err, rowtable.ErrEmptyTable):
		Error(w, http.StatusNotFound, "No data found in the sheet")

	case errors.Is(err, sheetdb.ErrRangeUnparseable):
		ErrorWithDetails(w, http.StatusBadRequest, "Invalid spreadsheet range", err.Error())
	case errors.Is(err, sheetdb.ErrPermissionDenied):
		Error(w, http.StatusForbidden, "Permission denied for the spreadsheet")
	case errors.Is(err, sheetdb.ErrSheetNotFound):
		Error(w, http.StatusNotFound, "Spreadsheet not found")

	default:
		ErrorWithDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
