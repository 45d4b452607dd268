package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"falgoritma/internal/config"
	"falgoritma/internal/models/response_models"
	"falgoritma/internal/repositories"
	"falgoritma/pkg/utils"
)

type CreditServiceInterface interface {
	GetPackages() []config.CreditPackage
	GetBalance(ctx context.Context, accountID uuid.UUID) (*response_models.BalanceResponse, error)
	SimulatePurchase(ctx context.Context, accountID uuid.UUID, packageID string) (*response_models.PurchaseResponse, error)
}

type CreditService struct {
	accountRepo repositories.AccountRepository
	catalog     *config.Catalog
}

func NewCreditService(accountRepo repositories.AccountRepository, catalog *config.Catalog) CreditServiceInterface {
	return &CreditService{
		accountRepo: accountRepo,
		catalog:     catalog,
	}
}

func (c *CreditService) GetPackages() []config.CreditPackage {
	return c.catalog.Packages()
}

func (c *CreditService) GetBalance(ctx context.Context, accountID uuid.UUID) (*response_models.BalanceResponse, error) {
	account, err := c.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.BalanceResponse{Credits: account.Credits}, nil
}

// SimulatePurchase credits the account without any payment flow. No payment
// gateway is involved.
func (c *CreditService) SimulatePurchase(ctx context.Context, accountID uuid.UUID, packageID string) (*response_models.PurchaseResponse, error) {

	pkg, ok := c.catalog.PackageByID(packageID)
	if !ok {
		return nil, utils.ErrInvalidPackage
	}

	newBalance, err := c.accountRepo.CreditBalance(ctx, accountID, pkg.Credits)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Simulated purchase: user %s bought %s (+%d credits)", accountID, pkg.Name, pkg.Credits)

	return &response_models.PurchaseResponse{
		Success:    true,
		Package:    pkg,
		NewBalance: newBalance,
	}, nil
}
