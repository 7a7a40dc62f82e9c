package employee

import "context"

// EmployeeService defines directory operations. Mutations are reserved
// for administrators; the punch workflow only reads.
type EmployeeService interface {
	// ListNames returns all non-blank directory names in row order,
	// for kiosk display.
	ListNames(ctx context.Context) ([]string, error)

	List(ctx context.Context) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
