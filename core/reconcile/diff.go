package reconcile

// Update pairs a stored row id with the submitted payload that replaces it.
type Update struct {
	// ID is the stored row identifier the payload is written to.
	ID int64

	// Row is the submitted payload, passed through to the collection's
	// UpdateRow untouched.
	Row any
}

// Diff is the three-way partition of a parent's current child rows versus
// the submitted target rows.
type Diff struct {
	// Delete holds ids of current rows absent from the target.
	Delete []int64

	// Update holds target rows that carry an existing id, in submitted
	// order. Updates are unconditional; no payload comparison is done.
	Update []Update

	// Insert holds target rows classified as new, in submitted order.
	Insert []any
}

// Empty reports whether the diff plans no work at all.
func (d Diff) Empty() bool {
	return len(d.Delete) == 0 && len(d.Update) == 0 && len(d.Insert) == 0
}

// ComputeDiff partitions targetRows against currentIDs. rowID extracts the
// raw id value from a target row; Classify decides existing vs new.
//
// Duplicate ids within targetRows are not deduplicated: each occurrence
// becomes its own Update, applied in array order, so the last one wins.
// A target id that matches no current row still lands in Update; the scoped
// update statement will simply affect zero rows.
func ComputeDiff(currentIDs []int64, targetRows []any, rowID func(row any) any) Diff {
	var diff Diff

	keep := make(map[int64]struct{}, len(targetRows))
	for _, row := range targetRows {
		ref := Classify(rowID(row))
		if ref.IsExisting() {
			diff.Update = append(diff.Update, Update{ID: ref.ID(), Row: row})
			keep[ref.ID()] = struct{}{}
		} else {
			diff.Insert = append(diff.Insert, row)
		}
	}

	// An empty keep set deletes the whole current set for the parent. This
	// is special-cased rather than left to the set difference so the
	// collection can issue an unconditional parent-scoped delete instead of
	// a malformed statement with an empty exclusion list.
	if len(keep) == 0 {
		diff.Delete = append(diff.Delete, currentIDs...)
		return diff
	}

	for _, id := range currentIDs {
		if _, ok := keep[id]; !ok {
			diff.Delete = append(diff.Delete, id)
		}
	}

	return diff
}
