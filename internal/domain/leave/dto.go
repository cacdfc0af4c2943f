package leave

import (
	"github.com/rcc-dimension/attendance-backend-go/internal/pkg/validator"
)

// SubmitRequest carries a leave application. Dates are DD/MM/YYYY, Days is
// a decimal string the client computed from the span.
type SubmitRequest struct {
	Name            string `json:"name"`
	EmpCode         string `json:"empCode"`
	Department      string `json:"department"`
	FromDate        string `json:"fromDate"`
	ToDate          string `json:"toDate"`
	Shift           string `json:"shift"`
	TypeOfLeave     string `json:"typeOfLeave"`
	Reason          string `json:"reason"`
	Days            string `json:"days"`
	ApprovalManager string `json:"approvalManager"`
}

func (r *SubmitRequest) Validate() error {
	errs := validator.Required(
		[]string{"name", "empCode", "department", "fromDate", "toDate", "shift", "typeOfLeave", "reason", "days", "approvalManager"},
		map[string]string{
			"name":            r.Name,
			"empCode":         r.EmpCode,
			"department":      r.Department,
			"fromDate":        r.FromDate,
			"toDate":          r.ToDate,
			"shift":           r.Shift,
			"typeOfLeave":     r.TypeOfLeave,
			"reason":          r.Reason,
			"days":            r.Days,
			"approvalManager": r.ApprovalManager,
		},
	)
	if len(errs) > 0 {
		return errs
	}

	if !validator.IsValidDDMMYYYY(r.FromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "fromDate",
			Message: "fromDate must be DD/MM/YYYY",
		})
	}
	if !validator.IsValidDDMMYYYY(r.ToDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "toDate",
			Message: "toDate must be DD/MM/YYYY",
		})
	}
	if !validator.IsNumeric(r.Days) {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be numeric",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApproveRequest mirrors the manager approval form. Field names follow the
// sheet's column names, so the JSON keys are unusual on purpose.
type ApproveRequest struct {
	Approved  string   `json:"Approved"`
	LeaveDays *float64 `json:"leaveDays"`
	EmpCode   string   `json:"EMPCODE"`
}

func (r *ApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Approved) || r.LeaveDays == nil || validator.IsEmpty(r.EmpCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "Approved",
			Message: "Approved, leaveDays, and EMPCODE are required",
		})
		return errs
	}
	if !validator.IsInSlice(r.Approved, []string{"Approved", "Rejected"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "Approved",
			Message: "Approved must be either 'Approved' or 'Rejected'",
		})
	}
	if *r.LeaveDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveDays",
			Message: "leaveDays must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
