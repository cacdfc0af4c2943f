package attendance

import "github.com/rcc-dimension/attendance-backend-go/internal/pkg/validator"

// SubmitRequest carries an attendance form post. Image is an optional
// base64 payload.
type SubmitRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	EmpCode      string `json:"empCode"`
	Site         string `json:"site"`
	EntryType    string `json:"entryType"`
	WorkShift    string `json:"workShift"`
	LocationName string `json:"locationName"`
	Image        string `json:"image"`
}

func (r *SubmitRequest) Validate() error {
	errs := validator.Required(
		[]string{"email", "name", "empCode", "site", "entryType", "workShift", "locationName"},
		map[string]string{
			"email":        r.Email,
			"name":         r.Name,
			"empCode":      r.EmpCode,
			"site":         r.Site,
			"entryType":    r.EntryType,
			"workShift":    r.WorkShift,
			"locationName": r.LocationName,
		},
	)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the attendance listing to one day, optionally one
// person. Date accepts ISO or DD/MM/YYYY; empty means today.
type ListFilter struct {
	Email string
	Date  string
}
