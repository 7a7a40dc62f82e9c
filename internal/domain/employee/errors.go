package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrIdentityMismatch deliberately covers both an unknown name and a
	// wrong date of birth so the kiosk cannot be used to probe which
	// names exist in the directory.
	ErrIdentityMismatch = errors.New("employee not found or date of birth incorrect")
)
