package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrNotPunchedIn       = errors.New("no punch-in record found, punch in first")
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrMalformedTime is returned by CalculateWorkingHours instead of a
	// silent zero so callers cannot record a plausible-looking but wrong
	// 0-hour session.
	ErrMalformedTime = errors.New("malformed clock time, expected HH:MM")
)

// PunchConflictError rejects a duplicate punch, echoing the time of the
// punch already on record.
type PunchConflictError struct {
	Direction string // "in" or "out"
	At        string // HH:MM of the existing punch
}

func (e *PunchConflictError) Error() string {
	return fmt.Sprintf("already punched %s today at %s", e.Direction, e.At)
}
