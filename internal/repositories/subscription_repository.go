package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"falgoritma/internal/models/db_models"
)

type SubscriptionRepository interface {
	// InsertWithPremium creates the subscription row and, in the same
	// transaction, flips the account to premium and grants the plan credits.
	InsertWithPremium(ctx context.Context, sub *db_models.Subscription, creditGrant int) error
	FindActive(ctx context.Context, accountID uuid.UUID, now int64) (*db_models.Subscription, error)
	// CancelWithClear marks the subscription cancelled and clears the premium
	// flags on the account, atomically.
	CancelWithClear(ctx context.Context, sub *db_models.Subscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

func (s *subscriptionRepository) InsertWithPremium(ctx context.Context, sub *db_models.Subscription, creditGrant int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Account{}).
			Where("id = ?", sub.AccountID).
			Updates(map[string]interface{}{
				"is_premium":         true,
				"premium_expires_at": sub.EndsAt,
				"credits":            gorm.Expr("credits + ?", creditGrant),
			}).Error
	})
}

func (s *subscriptionRepository) FindActive(ctx context.Context, accountID uuid.UUID, now int64) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Where("account_id = ? AND status = ? AND ends_at >= ?",
			accountID, db_models.SubStatusActive, now).
		Order("created_at DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s *subscriptionRepository) CancelWithClear(ctx context.Context, sub *db_models.Subscription) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Subscription{}).
			Where("id = ?", sub.ID).
			Update("status", db_models.SubStatusCancelled).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Account{}).
			Where("id = ?", sub.AccountID).
			Updates(map[string]interface{}{
				"is_premium":         false,
				"premium_expires_at": nil,
			}).Error
	})
}
