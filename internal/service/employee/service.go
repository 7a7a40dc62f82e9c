package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clockwork-hq/timeclock-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// ListNames implements employee.EmployeeService. Blank names are skipped
// so a half-filled directory row never shows up on the kiosk.
func (s *EmployeeServiceImpl) ListNames(ctx context.Context) ([]string, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	names := make([]string, 0, len(employees))
	for _, emp := range employees {
		if strings.TrimSpace(emp.FullName) == "" {
			continue
		}
		names = append(names, emp.FullName)
	}

	return names, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:          uuid.NewString(),
		FullName:    strings.TrimSpace(req.FullName),
		DateOfBirth: dob,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return toResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
	emp.FullName = strings.TrimSpace(req.FullName)
	emp.DateOfBirth = dob

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return toResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		FullName:    emp.FullName,
		DateOfBirth: emp.DateOfBirth.Format("2006-01-02"),
		CreatedAt:   emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   emp.UpdatedAt.Format(time.RFC3339),
	}
}
