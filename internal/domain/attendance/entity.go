package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance statuses. A record is open while "In Progress"; punching out
// classifies it against the standard-hours threshold and makes it terminal.
const (
	StatusInProgress = "In Progress"
	StatusOnTime     = "On Time"
	StatusLessHours  = "Less Hours"
)

type Attendance struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	PunchIn    *time.Time
	PunchOut   *time.Time
	TotalHours *decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for listings
	EmployeeName *string
}

// IsOpen reports whether the record has a punch-in but no punch-out yet.
func (a *Attendance) IsOpen() bool {
	return a.PunchIn != nil && a.PunchOut == nil
}

// IsTerminal reports whether the record is closed. Terminal records are
// never mutated again.
func (a *Attendance) IsTerminal() bool {
	return a.PunchOut != nil
}
