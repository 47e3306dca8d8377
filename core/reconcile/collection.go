package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Collection defines the interface for collection-specific reconciliation
// statements. Each child collection (participants, items, company
// memberships) implements how to list, delete, update, and insert its rows,
// always scoped to one parent and always through the transaction handle it
// is given.
type Collection interface {
	// Name returns the unique name of this collection (e.g. "participants").
	// Also used as the request payload key by the HTTP layer.
	Name() string

	// RowID extracts the raw id value from a target row. The engine runs it
	// through Classify; implementations must not interpret it themselves.
	RowID(row any) any

	// CurrentIDs returns the ids of all rows stored for the parent at the
	// start of reconciliation.
	CurrentIDs(ctx context.Context, tx *gorm.DB, parentID int64) ([]int64, error)

	// DeleteRows removes the given rows. Only called with a non-empty ids
	// slice, so implementations never build an IN clause over nothing.
	DeleteRows(ctx context.Context, tx *gorm.DB, parentID int64, ids []int64) error

	// UpdateRow writes the payload to the row scoped by parent and id.
	// Implementations must not fail on zero affected rows: a stale or
	// foreign id is a silent no-op.
	UpdateRow(ctx context.Context, tx *gorm.DB, parentID int64, id int64, row any) error

	// InsertRow creates a fresh row associated with the parent.
	InsertRow(ctx context.Context, tx *gorm.DB, parentID int64, row any) error
}

// PreApplyHook is an optional Collection extension. BeforeApply runs after
// the delete phase and before any update or insert, inside the same
// transaction. The membership collection uses it to clear a previous
// primary flag so the single-primary invariant holds even when the caller
// sends a new primary without un-flagging the old one.
type PreApplyHook interface {
	BeforeApply(ctx context.Context, tx *gorm.DB, parentID int64, targetRows []any) error
}
