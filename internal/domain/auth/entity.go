package auth

import "time"

// Admin is a back-office account allowed to manage the directory and
// review the ledger. Admins never punch; kiosk identity is separate.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
