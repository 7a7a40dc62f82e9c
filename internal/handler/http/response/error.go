package response

import (
	"errors"
	"net/http"

	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/auth"
	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/employee"
	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Duplicate punches carry the conflicting timestamp in the message
	var punchConflict *attendance.PunchConflictError
	if errors.As(err, &punchConflict) {
		Conflict(w, punchConflict.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminNotFound):
		NotFound(w, "Admin not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrIdentityMismatch):
		Unauthorized(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotPunchedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
