package employee

import "time"

// Employee is a directory entry. FullName is the identifier the kiosk
// punches against: comparison is whitespace-trimmed and case-sensitive,
// and duplicate names resolve to the earliest row.
type Employee struct {
	ID          string
	FullName    string
	DateOfBirth time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
