package user

import (
	"context"

	"auction-manager/core/reconcile"
	"auction-manager/feature/user/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service orchestrates user reconciliation: one transaction per write,
// parent first, then company memberships.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create inserts the user and reconciles the membership collection against
// the submitted target state, all in one transaction. Returns the newly
// assigned user id.
func (s *Service) Create(ctx context.Context, fields UserFields, companies []MembershipInput) (int64, error) {
	var id int64
	err := reconcile.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		u := models.User{
			Username: fields.Username,
			Email:    fields.Email,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		id = u.ID

		return reconcile.ApplyAll(ctx, tx, u.ID,
			reconcile.TargetSet{Collection: membershipCollection{}, Rows: toAny(companies)},
		)
	})
	if err != nil {
		s.logger.Error("User create failed", zap.Error(err))
		return 0, err
	}

	s.logger.Info("User created", zap.Int64("user_id", id))
	return id, nil
}

// Update applies the scalar-field update and reconciles the membership
// collection in one transaction. Like the auction path, a call against a
// missing or soft-deleted user affects zero parent rows and still reports
// success.
func (s *Service) Update(ctx context.Context, id int64, fields UserFields, companies []MembershipInput) error {
	err := reconcile.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ? AND deleted = 0", id).
			Updates(fields.updates()).Error; err != nil {
			return err
		}

		return reconcile.ApplyAll(ctx, tx, id,
			reconcile.TargetSet{Collection: membershipCollection{}, Rows: toAny(companies)},
		)
	})
	if err != nil {
		s.logger.Error("User update failed", zap.Int64("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("User updated", zap.Int64("user_id", id))
	return nil
}

// Delete hard-deletes the user and all memberships in one transaction.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := reconcile.RunInTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.CompanyMembership{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.User{}).Error
	})
	if err != nil {
		s.logger.Error("User delete failed", zap.Int64("user_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

// Detail bundles a user with their memberships for read calls.
type Detail struct {
	User      models.User                `json:"user"`
	Companies []models.CompanyMembership `json:"companies"`
}

// Get loads one user with their memberships. Returns gorm.ErrRecordNotFound
// when the user does not exist or is soft-deleted.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	var d Detail
	db := s.db.WithContext(ctx)

	if err := db.Where("id = ? AND deleted = 0", id).First(&d.User).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", id).Order("id").Find(&d.Companies).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
