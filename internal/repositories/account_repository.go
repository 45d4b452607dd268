package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"falgoritma/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// CreditBalance atomically increments the balance and returns the new value.
	CreditBalance(ctx context.Context, id uuid.UUID, amount int) (int, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (a *accountRepository) CreditBalance(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	err := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount)).Error
	if err != nil {
		return 0, err
	}

	var account db_models.Account
	if err := a.db.WithContext(ctx).Select("credits").First(&account, "id = ?", id).Error; err != nil {
		return 0, err
	}
	return account.Credits, nil
}
