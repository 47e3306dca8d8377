package auction

// Collection adapters implementing reconcile.Collection for the auction's
// two child collections. Fixed processing order: participants before items.

import (
	"context"

	"auction-manager/feature/auction/models"

	"gorm.io/gorm"
)

type participantCollection struct{}

func (participantCollection) Name() string { return "participants" }

func (participantCollection) RowID(row any) any {
	return row.(ParticipantInput).ID
}

func (participantCollection) CurrentIDs(ctx context.Context, tx *gorm.DB, auctionID int64) ([]int64, error) {
	var ids []int64
	err := tx.WithContext(ctx).Model(&models.Participant{}).
		Where("auction_id = ?", auctionID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (participantCollection) DeleteRows(ctx context.Context, tx *gorm.DB, auctionID int64, ids []int64) error {
	return tx.WithContext(ctx).
		Where("auction_id = ? AND id IN ?", auctionID, ids).
		Delete(&models.Participant{}).Error
}

func (participantCollection) UpdateRow(ctx context.Context, tx *gorm.DB, auctionID int64, id int64, row any) error {
	in := row.(ParticipantInput)
	// Affected-row count is deliberately not checked: a stale id scoped to
	// this auction matches nothing and that is fine.
	return tx.WithContext(ctx).Model(&models.Participant{}).
		Where("auction_id = ? AND id = ?", auctionID, id).
		Updates(map[string]any{
			"user_id": in.UserID,
			"status":  in.Status,
		}).Error
}

func (participantCollection) InsertRow(ctx context.Context, tx *gorm.DB, auctionID int64, row any) error {
	in := row.(ParticipantInput)
	return tx.WithContext(ctx).Create(&models.Participant{
		AuctionID: auctionID,
		UserID:    in.UserID,
		Status:    in.Status,
	}).Error
}

type itemCollection struct{}

func (itemCollection) Name() string { return "items" }

func (itemCollection) RowID(row any) any {
	return row.(ItemInput).ID
}

func (itemCollection) CurrentIDs(ctx context.Context, tx *gorm.DB, auctionID int64) ([]int64, error) {
	var ids []int64
	err := tx.WithContext(ctx).Model(&models.Item{}).
		Where("auction_id = ?", auctionID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (itemCollection) DeleteRows(ctx context.Context, tx *gorm.DB, auctionID int64, ids []int64) error {
	return tx.WithContext(ctx).
		Where("auction_id = ? AND id IN ?", auctionID, ids).
		Delete(&models.Item{}).Error
}

func (itemCollection) UpdateRow(ctx context.Context, tx *gorm.DB, auctionID int64, id int64, row any) error {
	in := row.(ItemInput)
	return tx.WithContext(ctx).Model(&models.Item{}).
		Where("auction_id = ? AND id = ?", auctionID, id).
		Updates(map[string]any{
			"name":        in.Name,
			"description": in.Description,
			"start_price": in.StartPrice,
			"sort_order":  in.SortOrder,
		}).Error
}

func (itemCollection) InsertRow(ctx context.Context, tx *gorm.DB, auctionID int64, row any) error {
	in := row.(ItemInput)
	return tx.WithContext(ctx).Create(&models.Item{
		AuctionID:   auctionID,
		Name:        in.Name,
		Description: in.Description,
		StartPrice:  in.StartPrice,
		SortOrder:   in.SortOrder,
	}).Error
}
