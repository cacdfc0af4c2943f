package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rcc-dimension/attendance-backend-go/internal/domain/directory"
	"github.com/rcc-dimension/attendance-backend-go/internal/handler/http/response"
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/rowtable"
)

type DirectoryHandler interface {
	DropdownUserData(w http.ResponseWriter, r *http.Request)
	GetEmployees(w http.ResponseWriter, r *http.Request)
}

type DirectoryHandlerImpl struct {
	directoryService directory.DirectoryService
}

func NewDirectoryHandler(directoryService directory.DirectoryService) DirectoryHandler {
	return &DirectoryHandlerImpl{directoryService: directoryService}
}

type dropdownResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Data    []rowtable.Record `json:"data"`
}

type listResponse struct {
	Data []rowtable.Record `json:"data"`
}

// DropdownUserData implements DirectoryHandler.
func (d *DirectoryHandlerImpl) DropdownUserData(w http.ResponseWriter, r *http.Request) {
	records, err := d.directoryService.DropdownUsers(r.Context())
	if err != nil {
		slog.Error("DropdownUserData service error", "error", err)
		// An entirely empty roster sheet is a configuration mistake, not
		// a missing resource.
		if errors.Is(err, rowtable.ErrEmptyTable) {
			response.Error(w, http.StatusBadRequest, "No data found in the sheet")
			return
		}
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dropdownResponse{
		Success: true,
		Count:   len(records),
		Data:    records,
	})
}

// GetEmployees implements DirectoryHandler.
func (d *DirectoryHandlerImpl) GetEmployees(w http.ResponseWriter, r *http.Request) {
	records, err := d.directoryService.Employees(r.Context())
	if err != nil {
		slog.Error("GetEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, listResponse{Data: records})
}
