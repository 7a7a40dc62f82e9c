package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/clockwork-hq/timeclock-backend-go/internal/config"
	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Locker serializes the find-then-write punch sequence per
// (employee, work date) key, closing the duplicate-row race between
// concurrent punches.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	locker         Locker
	cfg            config.ClockConfig
	clock          Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	locker Locker,
	cfg config.ClockConfig,
	clock Clock,
) attendance.AttendanceService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		locker:         locker,
		cfg:            cfg,
		clock:          clock,
	}
}

// Punch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResult{}, err
	}

	emp, err := s.verifyIdentity(ctx, req.EmployeeName, req.DateOfBirth)
	if err != nil {
		return attendance.PunchResult{}, err
	}

	now := s.clock.Now().In(s.cfg.Location)
	workDate := now.Format("2006-01-02")

	var result attendance.PunchResult
	err = s.locker.WithLock(ctx, emp.ID+"|"+workDate, func(ctx context.Context) error {
		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, workDate)
		if err != nil {
			return err
		}

		if req.PunchType == attendance.PunchTypeIn {
			return s.punchIn(ctx, emp, existing, now, &result)
		}
		return s.punchOut(ctx, emp, existing, now, &result)
	})
	if err != nil {
		return attendance.PunchResult{}, err
	}

	return result, nil
}

// verifyIdentity checks the (name, date of birth) pair against the
// directory. It fails closed: lookup failures and mismatches all collapse
// into the same generic error so the kiosk cannot probe the directory.
func (s *AttendanceServiceImpl) verifyIdentity(ctx context.Context, fullName, dateOfBirth string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByName(ctx, fullName)
	if err != nil {
		if err != employee.ErrEmployeeNotFound {
			slog.Error("identity lookup failed", "error", err)
		}
		return employee.Employee{}, employee.ErrIdentityMismatch
	}

	if emp.DateOfBirth.Format("2006-01-02") != strings.TrimSpace(dateOfBirth) {
		return employee.Employee{}, employee.ErrIdentityMismatch
	}

	return emp, nil
}

func (s *AttendanceServiceImpl) punchIn(ctx context.Context, emp employee.Employee, existing *attendance.Attendance, now time.Time, result *attendance.PunchResult) error {
	if existing != nil && existing.PunchIn != nil {
		return &attendance.PunchConflictError{
			Direction: attendance.PunchTypeIn,
			At:        existing.PunchIn.In(s.cfg.Location).Format(attendance.TimeLayout),
		}
	}

	punchInUTC := now.UTC()
	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		WorkDate:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.cfg.Location),
		PunchIn:    &punchInUTC,
		Status:     attendance.StatusInProgress,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to create attendance record: %w", err)
	}

	result.Message = fmt.Sprintf("punched in at %s", now.Format(attendance.TimeLayout))
	result.Record = s.toResponse(created, emp.FullName)
	return nil
}

func (s *AttendanceServiceImpl) punchOut(ctx context.Context, emp employee.Employee, existing *attendance.Attendance, now time.Time, result *attendance.PunchResult) error {
	if existing == nil || existing.PunchIn == nil {
		return attendance.ErrNotPunchedIn
	}

	if existing.PunchOut != nil {
		// Terminal record, must not be overwritten.
		return &attendance.PunchConflictError{
			Direction: attendance.PunchTypeOut,
			At:        existing.PunchOut.In(s.cfg.Location).Format(attendance.TimeLayout),
		}
	}

	inTime := existing.PunchIn.In(s.cfg.Location).Format(attendance.TimeLayout)
	outTime := now.Format(attendance.TimeLayout)

	totalHours, err := attendance.CalculateWorkingHours(inTime, outTime)
	if err != nil {
		return err
	}

	punchOutUTC := now.UTC()
	existing.PunchOut = &punchOutUTC
	existing.TotalHours = &totalHours
	existing.Status = attendance.ClassifyStatus(totalHours, s.cfg.StandardWorkHours)

	if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	result.Message = fmt.Sprintf("punched out at %s, total hours: %s", outTime, totalHours.StringFixed(2))
	result.Record = s.toResponse(*existing, emp.FullName)
	return nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		name := ""
		if record.EmployeeName != nil {
			name = *record.EmployeeName
		}
		responses = append(responses, s.toResponse(record, name))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

func (s *AttendanceServiceImpl) toResponse(att attendance.Attendance, employeeName string) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: employeeName,
		Date:         att.WorkDate.Format("2006-01-02"),
		TotalHours:   att.TotalHours,
		Status:       att.Status,
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.Format(time.RFC3339),
	}

	if att.PunchIn != nil {
		in := att.PunchIn.In(s.cfg.Location).Format(attendance.TimeLayout)
		resp.PunchInTime = &in
	}
	if att.PunchOut != nil {
		out := att.PunchOut.In(s.cfg.Location).Format(attendance.TimeLayout)
		resp.PunchOutTime = &out
	}

	return resp
}
