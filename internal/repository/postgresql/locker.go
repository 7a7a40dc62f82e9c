package postgresql

import (
	"context"

	"github.com/clockwork-hq/timeclock-backend-go/internal/pkg/database"
)

// TxLocker runs a function inside a transaction holding an advisory lock
// on the given key. Satisfies the attendance service's Locker.
type TxLocker struct {
	db *database.DB
}

func NewTxLocker(db *database.DB) *TxLocker {
	return &TxLocker{db: db}
}

func (l *TxLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, l.db, func(txCtx context.Context) error {
		if err := AdvisoryXactLock(txCtx, l.db, key); err != nil {
			return err
		}
		return fn(txCtx)
	})
}
