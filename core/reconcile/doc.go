// Package reconcile provides a generic engine for synchronizing a parent
// record's child collections against a client-submitted desired final state,
// inside a single atomic transaction.
//
// A caller submits the complete target state of a collection (not a delta).
// The engine diffs it against the stored rows and applies the difference as
// delete, update, and insert statements, all through one transaction handle.
//
// # Architecture
//
// The engine consists of five small components:
//
//  1. Identity resolver: classifies a submitted row as Existing (carries a
//     positive id) or New (id absent, zero, negative, or unparseable).
//
//  2. Differencer: computes the three-way partition of current rows versus
//     target rows (delete / update / insert).
//
//  3. Transaction coordinator: RunInTransaction owns begin/commit/rollback
//     and guarantees the connection is returned to the pool on every path.
//
//  4. Collection engine: ApplyCollection / ApplyAll drive fetch-current,
//     diff, and application in the fixed order delete, update, insert.
//
//  5. Result normalizer: converts (data, error) pairs into the uniform
//     {success, data|error} envelope the HTTP layer serves.
//
// # Adapters
//
// Each child collection (auction participants, auction items, user company
// memberships) implements the Collection interface with its own GORM
// statements. Collections needing extra writes before the update/insert
// phase (e.g. clearing a previous primary membership flag) implement the
// optional PreApplyHook interface.
//
// # Semantics worth knowing
//
//   - Updates are unconditional: a target row with an id is written even if
//     nothing changed. Affected-row counts are not checked, so a stale id
//     that matches no stored row is a silent no-op, not an error.
//   - Duplicate ids in the target are not deduplicated; rows apply in array
//     order, so the last occurrence wins.
//   - An empty target set is a meaningful state: it deletes every current
//     row for the parent.
//   - There is no application-level locking. Two concurrent reconciliations
//     against the same parent race at the row level and the last committed
//     transaction wins; the storage layer's isolation is the only guarantee.
//
// # Usage Example
//
//	err := reconcile.RunInTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := tx.Create(&auction).Error; err != nil {
//	        return err
//	    }
//	    return reconcile.ApplyAll(ctx, tx, auction.ID,
//	        reconcile.TargetSet{Collection: participants, Rows: participantRows},
//	        reconcile.TargetSet{Collection: items, Rows: itemRows},
//	    )
//	})
package reconcile
