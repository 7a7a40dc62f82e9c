package attendance

import (
	"strings"

	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	PunchTypeIn  = "in"
	PunchTypeOut = "out"
)

type PunchRequest struct {
	EmployeeName string `json:"employeeName"`
	DateOfBirth  string `json:"dateOfBirth"` // YYYY-MM-DD
	PunchType    string `json:"punchType"`   // in | out
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	// Kiosk input arrives with stray whitespace; normalize before checking.
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeName",
			Message: "employeeName is required",
		})
	}

	if _, valid := validator.IsValidDate(r.DateOfBirth); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "dateOfBirth",
			Message: "dateOfBirth must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.PunchType, []string{PunchTypeIn, PunchTypeOut}) {
		errs = append(errs, validator.ValidationError{
			Field:   "punchType",
			Message: "punchType must be one of: in, out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResult struct {
	Message string
	Record  AttendanceResponse
}

type AttendanceResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name,omitempty"`
	Date         string           `json:"date"`
	PunchInTime  *string          `json:"punch_in_time,omitempty"`
	PunchOutTime *string          `json:"punch_out_time,omitempty"`
	TotalHours   *decimal.Decimal `json:"total_hours,omitempty"`
	Status       string           `json:"status"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

type AttendanceFilter struct {
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil {
		validStatuses := []string{StatusInProgress, StatusOnTime, StatusLessHours}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: In Progress, On Time, Less Hours",
			})
		}
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
