package response

import (
	"errors"
	"net/http"

	"github.com/guardian-payroll/backend-go/internal/domain/attendance"
	"github.com/guardian-payroll/backend-go/internal/domain/auth"
	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/domain/loan"
	"github.com/guardian-payroll/backend-go/internal/domain/location"
	"github.com/guardian-payroll/backend-go/internal/domain/payroll"
	"github.com/guardian-payroll/backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Work location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Work location not found")
	case errors.Is(err, location.ErrLocationNameExists):
		Conflict(w, "Work location name already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrLocationNotFound):
		NotFound(w, "Work location not found")

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan request not found")
	case errors.Is(err, loan.ErrLoanAlreadyProcessed):
		Conflict(w, "Loan request already processed")
	case errors.Is(err, loan.ErrLoanNotApproved):
		Conflict(w, "Loan request is not approved")
	case errors.Is(err, loan.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
