package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
type EmployeeRepository interface {
	// Create inserts a new directory entry.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByName retrieves the first employee whose trimmed full name
	// equals the trimmed input, case-sensitively. Returns
	// ErrEmployeeNotFound when no row matches.
	GetByName(ctx context.Context, fullName string) (Employee, error)

	// List retrieves all directory entries in insertion order.
	List(ctx context.Context) ([]Employee, error)

	// Update replaces the name and date of birth of an existing entry.
	Update(ctx context.Context, emp Employee) error

	// Delete removes a directory entry.
	Delete(ctx context.Context, id string) error
}
