package attendance

import (
	"time"

	"github.com/guardian-payroll/backend-go/internal/pkg/validator"
)

type UpsertAttendanceRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	Shift         string  `json:"shift"`
	Status        string  `json:"status"`
	LocationID    *string `json:"location_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	PhotoEvidence *string `json:"photo_evidence,omitempty"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !Shift(r.Shift).Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be 'day' or 'night'"})
	}
	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be a valid attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows a listing to one employee and/or an inclusive date range.
type ListFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	Shift         string  `json:"shift"`
	Status        string  `json:"status"`
	LocationID    *string `json:"location_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	PhotoEvidence *string `json:"photo_evidence,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.DateKey(),
		Shift:         string(a.Shift),
		Status:        string(a.Status),
		LocationID:    a.LocationID,
		Notes:         a.Notes,
		PhotoEvidence: a.PhotoEvidence,
	}
}
