package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/leave"
	"github.com/rcc-dimension/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	GetFormData(w http.ResponseWriter, r *http.Request)
	SubmitLeave(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

type messageResponse struct {
	Message string `json:"message"`
}

// GetFormData implements LeaveHandler. It returns every submitted leave
// request.
func (l *LeaveHandlerImpl) GetFormData(w http.ResponseWriter, r *http.Request) {
	records, err := l.leaveService.List(r.Context())
	if err != nil {
		slog.Error("GetFormData service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, listResponse{Data: records})
}

// SubmitLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	var submitReq leave.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("SubmitLeave decode error", "error", err)
		response.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := submitReq.Validate(); err != nil {
		slog.Error("SubmitLeave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := l.leaveService.Submit(r.Context(), submitReq); err != nil {
		slog.Error("SubmitLeave service error", "error", err, "empCode", submitReq.EmpCode)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave form recorded", "empCode", submitReq.EmpCode, "typeOfLeave", submitReq.TypeOfLeave)
	response.JSON(w, http.StatusOK, submitResponse{
		Result:  "success",
		Message: "Leave form recorded successfully",
	})
}

// ApproveLeave implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	var approveReq leave.ApproveRequest

	if err := json.NewDecoder(r.Body).Decode(&approveReq); err != nil {
		slog.Error("ApproveLeave decode error", "error", err)
		response.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := approveReq.Validate(); err != nil {
		slog.Error("ApproveLeave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := l.leaveService.Approve(r.Context(), approveReq); err != nil {
		slog.Error("ApproveLeave service error", "error", err, "empCode", approveReq.EmpCode)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave approval recorded", "empCode", approveReq.EmpCode, "approved", approveReq.Approved)
	response.JSON(w, http.StatusOK, messageResponse{
		Message: "Leave status and days updated successfully",
	})
}
