package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"falgoritma/internal/models/db_models"
	"falgoritma/pkg/utils"
)

type FortuneRepository interface {
	// InsertWithDebit commits the fortune record and the credit debit in one
	// transaction. The debit is a guarded decrement: if the balance no longer
	// covers cost (a concurrent request spent it first), nothing is written and
	// utils.ErrInsufficientCredits is returned.
	InsertWithDebit(ctx context.Context, fortune *db_models.Fortune, cost int) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Fortune, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Fortune, error)
}

type fortuneRepository struct {
	db *gorm.DB
}

func NewFortuneRepository(db *gorm.DB) FortuneRepository {
	return &fortuneRepository{
		db: db,
	}
}

func (f *fortuneRepository) InsertWithDebit(ctx context.Context, fortune *db_models.Fortune, cost int) error {
	return f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Account{}).
			Where("id = ? AND credits >= ?", fortune.AccountID, cost).
			UpdateColumn("credits", gorm.Expr("credits - ?", cost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrInsufficientCredits
		}

		return tx.Create(fortune).Error
	})
}

func (f *fortuneRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Fortune, error) {
	var fortunes []db_models.Fortune
	err := f.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&fortunes).Error

	if err != nil {
		return nil, err
	}

	return fortunes, nil
}

func (f *fortuneRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Fortune, error) {
	var fortune db_models.Fortune
	err := f.db.WithContext(ctx).First(&fortune, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &fortune, nil
}
