package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/employee"
	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/validator"
)

const (
	kioskActionGetEmployees = "getEmployees"
	kioskActionPunch        = "punch"
)

// KioskRequest is the single action envelope kiosk clients submit.
type KioskRequest struct {
	Action       string `json:"action"`
	EmployeeName string `json:"employeeName"`
	DateOfBirth  string `json:"dateOfBirth"`
	PunchType    string `json:"punchType"`
}

// KioskResponse is the kiosk envelope for punch and error replies.
type KioskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// KioskListResponse is the envelope for the directory-listing action.
// The employees key is always present, even when the directory is empty.
type KioskListResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Employees []string `json:"employees"`
}

type KioskHandler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

type kioskHandlerImpl struct {
	attendanceService attendance.AttendanceService
	employeeService   employee.EmployeeService
}

func NewKioskHandler(attendanceService attendance.AttendanceService, employeeService employee.EmployeeService) KioskHandler {
	return &kioskHandlerImpl{
		attendanceService: attendanceService,
		employeeService:   employeeService,
	}
}

// Handle implements KioskHandler.
func (h *kioskHandlerImpl) Handle(w http.ResponseWriter, r *http.Request) {
	var req KioskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeKiosk(w, http.StatusBadRequest, KioskResponse{
			Success: false,
			Message: "invalid request format",
		})
		return
	}

	switch req.Action {
	case kioskActionGetEmployees:
		h.getEmployees(w, r)
	case kioskActionPunch:
		h.punch(w, r, req)
	default:
		writeKiosk(w, http.StatusBadRequest, KioskResponse{
			Success: false,
			Message: "unrecognized action",
		})
	}
}

func (h *kioskHandlerImpl) getEmployees(w http.ResponseWriter, r *http.Request) {
	names, err := h.employeeService.ListNames(r.Context())
	if err != nil {
		slog.Error("kiosk: failed to list employees", "error", err)
		writeKiosk(w, http.StatusInternalServerError, KioskResponse{
			Success: false,
			Message: "server error",
		})
		return
	}

	if names == nil {
		names = []string{} // marshal as [] rather than null
	}

	writeKiosk(w, http.StatusOK, KioskListResponse{
		Success:   true,
		Message:   "employees retrieved",
		Employees: names,
	})
}

func (h *kioskHandlerImpl) punch(w http.ResponseWriter, r *http.Request, req KioskRequest) {
	result, err := h.attendanceService.Punch(r.Context(), attendance.PunchRequest{
		EmployeeName: req.EmployeeName,
		DateOfBirth:  req.DateOfBirth,
		PunchType:    req.PunchType,
	})
	if err != nil {
		status, message := kioskError(err)
		writeKiosk(w, status, KioskResponse{Success: false, Message: message})
		return
	}

	writeKiosk(w, http.StatusOK, KioskResponse{
		Success: true,
		Message: result.Message,
	})
}

// kioskError flattens domain errors into the kiosk's message-only shape.
// Internal failures collapse into a generic "server error" so nothing
// about the backend leaks to the shop floor.
func kioskError(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusUnprocessableEntity, validationErrs.Error()
	}

	var punchConflict *attendance.PunchConflictError
	if errors.As(err, &punchConflict) {
		return http.StatusConflict, punchConflict.Error()
	}

	switch {
	case errors.Is(err, employee.ErrIdentityMismatch):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, attendance.ErrNotPunchedIn):
		return http.StatusConflict, err.Error()
	default:
		slog.Error("kiosk: punch failed", "error", err)
		return http.StatusInternalServerError, "server error"
	}
}

func writeKiosk(w http.ResponseWriter, statusCode int, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
