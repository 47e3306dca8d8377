// Package auction exposes the auction CRUD surface and drives the
// reconciliation engine for the auction's two child collections.
//
// Create and update calls take the complete desired state of the
// participant and item lists and reconcile them inside one transaction,
// participants before items. Deletes are a separate, simpler path: no
// diffing, one transaction removing children then parent, with an optional
// JSON snapshot written to object storage first.
package auction
