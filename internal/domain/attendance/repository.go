package attendance

import (
	"context"
)

// AttendanceRepository defines data access for the attendance ledger.
// Work dates are passed as YYYY-MM-DD strings already resolved to the
// configured timezone.
type AttendanceRepository interface {
	// Create inserts a new attendance record.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the employee's record for a work
	// date. When duplicate rows exist for the same day the most recently
	// created one wins. Returns nil when no row matches.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate string) (*Attendance, error)

	// Update writes punch-out, total hours and status of an existing
	// record in place.
	Update(ctx context.Context, att Attendance) error

	// List retrieves ledger records with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetStaleOpenRecords retrieves open records whose work date is
	// strictly before the given date, oldest first.
	GetStaleOpenRecords(ctx context.Context, before string) ([]Attendance, error)
}
