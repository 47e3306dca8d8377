package user

import (
	"context"

	"auction-manager/core/reconcile"
	"auction-manager/feature/user/models"

	"gorm.io/gorm"
)

// membershipCollection reconciles a user's company memberships. It carries
// the one piece of collection-specific extra logic in the system: the
// BeforeApply hook that keeps the single-primary invariant.
type membershipCollection struct{}

func (membershipCollection) Name() string { return "companies" }

func (membershipCollection) RowID(row any) any {
	return row.(MembershipInput).ID
}

func (membershipCollection) CurrentIDs(ctx context.Context, tx *gorm.DB, userID int64) ([]int64, error) {
	var ids []int64
	err := tx.WithContext(ctx).Model(&models.CompanyMembership{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (membershipCollection) DeleteRows(ctx context.Context, tx *gorm.DB, userID int64, ids []int64) error {
	return tx.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&models.CompanyMembership{}).Error
}

func (membershipCollection) UpdateRow(ctx context.Context, tx *gorm.DB, userID int64, id int64, row any) error {
	in := row.(MembershipInput)
	return tx.WithContext(ctx).Model(&models.CompanyMembership{}).
		Where("user_id = ? AND id = ?", userID, id).
		Updates(map[string]any{
			"company_id": in.CompanyID,
			"role":       in.Role,
			"is_primary": in.IsPrimary,
		}).Error
}

func (membershipCollection) InsertRow(ctx context.Context, tx *gorm.DB, userID int64, row any) error {
	in := row.(MembershipInput)
	return tx.WithContext(ctx).Create(&models.CompanyMembership{
		UserID:    userID,
		CompanyID: in.CompanyID,
		Role:      in.Role,
		IsPrimary: in.IsPrimary,
	}).Error
}

// BeforeApply runs between the delete and update phases. Every target row
// flagged primary clears is_primary on all other memberships of the user,
// so a caller can promote a new primary without explicitly un-flagging the
// old one and exactly one primary survives the transaction.
func (membershipCollection) BeforeApply(ctx context.Context, tx *gorm.DB, userID int64, targetRows []any) error {
	for _, raw := range targetRows {
		in := raw.(MembershipInput)
		if !in.IsPrimary {
			continue
		}

		q := tx.WithContext(ctx).Model(&models.CompanyMembership{}).
			Where("user_id = ?", userID)
		if ref := reconcile.Classify(in.ID); ref.IsExisting() {
			q = q.Where("id <> ?", ref.ID())
		}
		if err := q.Update("is_primary", false).Error; err != nil {
			return err
		}
	}
	return nil
}
