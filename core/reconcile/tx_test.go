package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRunInTransaction_CommitOnSuccess(t *testing.T) {
	db := setupEngineDB(t, "tx_commit")

	err := RunInTransaction(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(&widget{ParentID: 1, Label: "committed"}).Error
	})
	require.NoError(t, err)

	assert.Len(t, loadWidgets(t, db, 1), 1)
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	db := setupEngineDB(t, "tx_rollback")

	boom := errors.New("work failed")
	err := RunInTransaction(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&widget{ParentID: 1, Label: "doomed"}).Error; err != nil {
			return err
		}
		return boom
	})

	// The triggering error surfaces unchanged; the write is gone.
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, loadWidgets(t, db, 1))
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	db := setupEngineDB(t, "tx_panic")

	err := RunInTransaction(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&widget{ParentID: 1, Label: "doomed"}).Error; err != nil {
			return err
		}
		panic("mid-sequence failure")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mid-sequence failure")
	assert.Empty(t, loadWidgets(t, db, 1))
}

func TestRunInTransaction_StatementFailureRollsBackEarlierWrites(t *testing.T) {
	db := setupEngineDB(t, "tx_constraint")

	// parent_id is NOT NULL; the second create violates it mid-sequence.
	err := RunInTransaction(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&widget{ParentID: 1, Label: "first"}).Error; err != nil {
			return err
		}
		return tx.Exec(`INSERT INTO widgets (parent_id, label) VALUES (NULL, 'second')`).Error
	})

	require.Error(t, err)
	assert.Empty(t, loadWidgets(t, db, 1))
}

func TestNormalize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := Normalize(map[string]any{"id": 7}, nil)
		assert.True(t, r.Success)
		assert.Empty(t, r.Error)
		assert.NotNil(t, r.Data)
	})

	t.Run("Failure", func(t *testing.T) {
		r := Normalize(nil, errors.New("constraint violation"))
		assert.False(t, r.Success)
		assert.Equal(t, "constraint violation", r.Error)
		assert.Nil(t, r.Data)
	})

	t.Run("Failure without message", func(t *testing.T) {
		r := Normalize(nil, errors.New(""))
		assert.False(t, r.Success)
		assert.Equal(t, "operation failed", r.Error)
	})
}
