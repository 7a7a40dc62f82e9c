package auth

import "context"

// AdminRepository defines data access for admin accounts.
type AdminRepository interface {
	// GetByEmail retrieves an admin by email. Returns ErrAdminNotFound
	// when no account matches.
	GetByEmail(ctx context.Context, email string) (Admin, error)
}
