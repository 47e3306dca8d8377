package reconcile

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// RunInTransaction opens one transaction handle, invokes work with it, and
// commits only if work returns nil. Any failure (error return, panic, or a
// failed commit) rolls back, and the handle is released back to the pool on
// every path.
//
// Rollback errors are swallowed after a best-effort attempt: the error that
// triggered the rollback is what callers see, and the operation always
// reports as failed. Every statement issued inside work must go through the
// provided handle, never the ambient pool, so no partial commit is ever
// observable.
func RunInTransaction(ctx context.Context, db *gorm.DB, work func(tx *gorm.DB) error) (err error) {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			err = fmt.Errorf("transaction aborted by panic: %v", r)
		}
	}()

	if err := work(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
