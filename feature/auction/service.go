package auction

import (
	"context"
	"errors"

	"auction-manager/core/reconcile"
	"auction-manager/feature/auction/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service orchestrates auction reconciliation: one transaction per write,
// parent first, then participants, then items.
type Service struct {
	db       *gorm.DB
	logger   *zap.Logger
	archiver *Archiver
}

// NewService creates a new auction service. archiver may be nil when object
// storage is not configured; deletes then skip the snapshot step.
func NewService(db *gorm.DB, logger *zap.Logger, archiver *Archiver) *Service {
	return &Service{db: db, logger: logger, archiver: archiver}
}

// Create inserts the auction and reconciles both child collections against
// the submitted target state, all in one transaction. Returns the newly
// assigned auction id.
func (s *Service) Create(ctx context.Context, fields AuctionFields, participants []ParticipantInput, items []ItemInput) (int64, error) {
	var id int64
	err := reconcile.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		a := models.Auction{
			Name:        fields.Name,
			Description: fields.Description,
			StartPrice:  fields.StartPrice,
			StartsAt:    fields.StartsAt,
			EndsAt:      fields.EndsAt,
		}
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		id = a.ID

		return reconcile.ApplyAll(ctx, tx, a.ID,
			reconcile.TargetSet{Collection: participantCollection{}, Rows: toAny(participants)},
			reconcile.TargetSet{Collection: itemCollection{}, Rows: toAny(items)},
		)
	})
	if err != nil {
		s.logger.Error("Auction create failed", zap.Error(err))
		return 0, err
	}

	s.logger.Info("Auction created", zap.Int64("auction_id", id))
	return id, nil
}

// Update applies the scalar-field update and reconciles both child
// collections, all in one transaction.
//
// The parent update is scoped to a non-deleted auction. A call against a
// missing or soft-deleted auction affects zero rows and still reports
// success: validating existence is the caller's job, and this no-op
// behavior is relied upon by the HTTP layer.
func (s *Service) Update(ctx context.Context, id int64, fields AuctionFields, participants []ParticipantInput, items []ItemInput) error {
	err := reconcile.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Model(&models.Auction{}).
			Where("id = ? AND deleted = 0", id).
			Updates(fields.updates()).Error; err != nil {
			return err
		}

		return reconcile.ApplyAll(ctx, tx, id,
			reconcile.TargetSet{Collection: participantCollection{}, Rows: toAny(participants)},
			reconcile.TargetSet{Collection: itemCollection{}, Rows: toAny(items)},
		)
	})
	if err != nil {
		s.logger.Error("Auction update failed", zap.Int64("auction_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("Auction updated", zap.Int64("auction_id", id))
	return nil
}

// SoftDelete marks the auction inactive without touching its children.
// Reconciliation calls against it become no-ops from then on.
func (s *Service) SoftDelete(ctx context.Context, id int64) error {
	return reconcile.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Model(&models.Auction{}).
			Where("id = ?", id).
			Update("deleted", 1).Error
	})
}

// Delete hard-deletes the auction and all its children in one transaction.
// No diffing: the whole row set goes. When an archiver is configured, a
// JSON snapshot is written to object storage first; an archive failure
// aborts the delete, since the snapshot is the only surviving record.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := reconcile.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if s.archiver != nil {
			snap, err := buildSnapshot(ctx, tx, id)
			if err != nil {
				return err
			}
			if snap != nil {
				if err := s.archiver.Archive(ctx, snap); err != nil {
					return err
				}
			}
		}

		if err := tx.Where("auction_id = ?", id).Delete(&models.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("auction_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Auction{}).Error
	})
	if err != nil {
		s.logger.Error("Auction delete failed", zap.Int64("auction_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("Auction deleted", zap.Int64("auction_id", id))
	return nil
}

// Detail bundles an auction with its child collections for read calls.
type Detail struct {
	Auction      models.Auction       `json:"auction"`
	Participants []models.Participant `json:"participants"`
	Items        []models.Item        `json:"items"`
}

// Get loads one auction with its children. Returns gorm.ErrRecordNotFound
// when the auction does not exist or is soft-deleted.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	var d Detail
	db := s.db.WithContext(ctx)

	if err := db.Where("id = ? AND deleted = 0", id).First(&d.Auction).Error; err != nil {
		return nil, err
	}
	if err := db.Where("auction_id = ?", id).Order("id").Find(&d.Participants).Error; err != nil {
		return nil, err
	}
	if err := db.Where("auction_id = ?", id).Order("id").Find(&d.Items).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all non-deleted auctions.
func (s *Service) List(ctx context.Context) ([]models.Auction, error) {
	var out []models.Auction
	err := s.db.WithContext(ctx).
		Where("deleted = 0").
		Order("id").
		Find(&out).Error
	return out, err
}

// buildSnapshot loads the auction and its children through the deletion
// transaction. Returns nil when the auction does not exist (nothing to
// archive, nothing to delete).
func buildSnapshot(ctx context.Context, tx *gorm.DB, id int64) (*Snapshot, error) {
	var snap Snapshot
	err := tx.WithContext(ctx).Where("id = ?", id).First(&snap.Auction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := tx.WithContext(ctx).Where("auction_id = ?", id).Order("id").Find(&snap.Participants).Error; err != nil {
		return nil, err
	}
	if err := tx.WithContext(ctx).Where("auction_id = ?", id).Order("id").Find(&snap.Items).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}
