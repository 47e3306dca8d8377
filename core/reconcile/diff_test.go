package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testRow is a minimal target row for differencer tests.
type testRow struct {
	ID    any
	Label string
}

func rowID(row any) any {
	return row.(testRow).ID
}

func rows(rs ...testRow) []any {
	out := make([]any, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}

func TestComputeDiff_Partition(t *testing.T) {
	current := []int64{1, 2, 3}
	target := rows(
		testRow{ID: 1, Label: "keep one"},
		testRow{ID: 3, Label: "keep three"},
		testRow{Label: "fresh"},
	)

	diff := ComputeDiff(current, target, rowID)

	assert.Equal(t, []int64{2}, diff.Delete)
	assert.Len(t, diff.Update, 2)
	assert.EqualValues(t, 1, diff.Update[0].ID)
	assert.EqualValues(t, 3, diff.Update[1].ID)
	assert.Len(t, diff.Insert, 1)
	assert.Equal(t, "fresh", diff.Insert[0].(testRow).Label)
}

func TestComputeDiff_EmptyTargetDeletesAll(t *testing.T) {
	current := []int64{4, 5, 6}

	diff := ComputeDiff(current, nil, rowID)

	assert.Equal(t, []int64{4, 5, 6}, diff.Delete)
	assert.Empty(t, diff.Update)
	assert.Empty(t, diff.Insert)
}

func TestComputeDiff_AllNewDeletesAll(t *testing.T) {
	// No target row carries an id, so the keep set is empty and the whole
	// current set goes.
	current := []int64{1, 2}
	target := rows(testRow{Label: "a"}, testRow{Label: "b"})

	diff := ComputeDiff(current, target, rowID)

	assert.Equal(t, []int64{1, 2}, diff.Delete)
	assert.Len(t, diff.Insert, 2)
}

func TestComputeDiff_IdenticalTargetIsIdempotent(t *testing.T) {
	current := []int64{1, 2}
	target := rows(testRow{ID: 1}, testRow{ID: 2})

	diff := ComputeDiff(current, target, rowID)

	assert.Empty(t, diff.Delete)
	assert.Empty(t, diff.Insert)
	assert.Len(t, diff.Update, 2)
	assert.False(t, diff.Empty())
}

func TestComputeDiff_DuplicateIDsNotDeduplicated(t *testing.T) {
	// Each occurrence becomes its own update, in array order. Last one wins
	// when applied.
	current := []int64{1}
	target := rows(
		testRow{ID: 1, Label: "first"},
		testRow{ID: 1, Label: "second"},
	)

	diff := ComputeDiff(current, target, rowID)

	assert.Len(t, diff.Update, 2)
	assert.Equal(t, "first", diff.Update[0].Row.(testRow).Label)
	assert.Equal(t, "second", diff.Update[1].Row.(testRow).Label)
	assert.Empty(t, diff.Delete)
}

func TestComputeDiff_StaleIDStaysInUpdate(t *testing.T) {
	// An id that matches no current row is still an update; the scoped
	// statement will affect zero rows, which is not an error.
	current := []int64{1}
	target := rows(testRow{ID: 99, Label: "stale"})

	diff := ComputeDiff(current, target, rowID)

	assert.Len(t, diff.Update, 1)
	assert.EqualValues(t, 99, diff.Update[0].ID)
	assert.Equal(t, []int64{1}, diff.Delete)
}

func TestComputeDiff_MalformedIDsClassifyAsNew(t *testing.T) {
	current := []int64{1}
	target := rows(
		testRow{ID: -5, Label: "negative"},
		testRow{ID: "garbage", Label: "non-numeric"},
	)

	diff := ComputeDiff(current, target, rowID)

	assert.Len(t, diff.Insert, 2)
	assert.Empty(t, diff.Update)
	assert.Equal(t, []int64{1}, diff.Delete)
}

func TestDiff_Empty(t *testing.T) {
	assert.True(t, Diff{}.Empty())
	assert.False(t, Diff{Delete: []int64{1}}.Empty())
}
