package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// TargetSet pairs a collection with the caller-submitted complete desired
// state of its rows for one parent.
type TargetSet struct {
	Collection Collection
	Rows       []any
}

// ApplyCollection reconciles one child collection inside the caller's
// transaction: fetch current ids, diff against the target, then apply the
// phases in the mandated order delete, update, insert. The computed diff is
// returned so callers can assert or log what was planned.
func ApplyCollection(ctx context.Context, tx *gorm.DB, col Collection, parentID int64, targetRows []any) (Diff, error) {
	currentIDs, err := col.CurrentIDs(ctx, tx, parentID)
	if err != nil {
		return Diff{}, err
	}

	diff := ComputeDiff(currentIDs, targetRows, col.RowID)

	if len(diff.Delete) > 0 {
		if err := col.DeleteRows(ctx, tx, parentID, diff.Delete); err != nil {
			return diff, err
		}
	}

	if hook, ok := col.(PreApplyHook); ok {
		if err := hook.BeforeApply(ctx, tx, parentID, targetRows); err != nil {
			return diff, err
		}
	}

	for _, u := range diff.Update {
		if err := col.UpdateRow(ctx, tx, parentID, u.ID, u.Row); err != nil {
			return diff, err
		}
	}

	for _, row := range diff.Insert {
		if err := col.InsertRow(ctx, tx, parentID, row); err != nil {
			return diff, err
		}
	}

	return diff, nil
}

// ApplyAll reconciles several collections for one parent, in the order
// given. Collection order is fixed per entity type (participants before
// items) so resulting row sets are deterministic; the first failing
// statement aborts the whole sequence.
func ApplyAll(ctx context.Context, tx *gorm.DB, parentID int64, sets ...TargetSet) error {
	for _, set := range sets {
		if _, err := ApplyCollection(ctx, tx, set.Collection, parentID, set.Rows); err != nil {
			return err
		}
	}
	return nil
}
