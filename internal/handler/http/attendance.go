package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/attendance"
	"github.com/rcc-dimension/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetAttendance(w http.ResponseWriter, r *http.Request)
	SubmitAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendanceData(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

type submitResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

// GetAttendance implements AttendanceHandler. It answers with a bare
// array, filtered to one day and optionally one email.
func (a *AttendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		Email: r.URL.Query().Get("email"),
		Date:  r.URL.Query().Get("date"),
	}

	records, err := a.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("GetAttendance service error", "error", err, "email", filter.Email, "date", filter.Date)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, records)
}

// SubmitAttendance implements AttendanceHandler.
func (a *AttendanceHandlerImpl) SubmitAttendance(w http.ResponseWriter, r *http.Request) {
	var submitReq attendance.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("SubmitAttendance decode error", "error", err)
		response.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := submitReq.Validate(); err != nil {
		slog.Error("SubmitAttendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := a.attendanceService.Submit(r.Context(), submitReq); err != nil {
		slog.Error("SubmitAttendance service error", "error", err, "email", submitReq.Email)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance recorded", "email", submitReq.Email, "entryType", submitReq.EntryType)
	response.JSON(w, http.StatusOK, submitResponse{
		Result:  "success",
		Message: "Attendance recorded successfully",
	})
}

// GetAttendanceData implements AttendanceHandler. It returns the whole
// attendance sheet for the admin dashboard.
func (a *AttendanceHandlerImpl) GetAttendanceData(w http.ResponseWriter, r *http.Request) {
	records, err := a.attendanceService.ListAll(r.Context())
	if err != nil {
		slog.Error("GetAttendanceData service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, listResponse{Data: records})
}
