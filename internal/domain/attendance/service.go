package attendance

import "context"

// AttendanceService defines business logic for the punch workflow.
type AttendanceService interface {
	// Punch processes a kiosk punch-in or punch-out after verifying the
	// employee's identity.
	Punch(ctx context.Context, req PunchRequest) (PunchResult, error)

	// List retrieves ledger records for the admin surface.
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
