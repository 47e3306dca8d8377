package reconcile

import "auction-manager/core/utils"

// ChildRef is the resolved identity of a submitted child row: either an
// existing stored row (positive id) or a new one. It is produced once by
// Classify and consumed everywhere else, instead of re-testing raw id
// values at each call site.
type ChildRef struct {
	id int64
}

// Existing builds a reference to a stored row.
func Existing(id int64) ChildRef {
	return ChildRef{id: id}
}

// New builds a reference to a row that does not exist yet.
func New() ChildRef {
	return ChildRef{}
}

// IsExisting reports whether the reference denotes a stored row.
func (r ChildRef) IsExisting() bool {
	return r.id > 0
}

// ID returns the stored row id, or 0 for a new row.
func (r ChildRef) ID() int64 {
	return r.id
}

// Classify resolves the identity of a submitted child row from its raw id
// value as it arrived on the wire (number, string, or absent).
//
// A row is Existing iff the value parses to a positive integer. Everything
// else (missing, zero, negative, non-numeric) classifies as New. This
// leniency is deliberate: malformed ids mean "create a fresh row", they are
// never rejected.
func Classify(raw any) ChildRef {
	if raw == nil {
		return New()
	}
	id := int64(utils.ToInt(raw))
	if id > 0 {
		return Existing(id)
	}
	return New()
}
