package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"falgoritma/internal/config"
	"falgoritma/internal/models/db_models"
	"falgoritma/pkg/utils"
)

func newCreditFixture(credits int) (CreditServiceInterface, uuid.UUID) {
	accounts := newFakeAccountRepo()
	account := &db_models.Account{Email: "ayse@example.com", Credits: credits}
	_ = accounts.Insert(context.Background(), account)

	return NewCreditService(accounts, config.NewCatalog()), account.ID
}

func TestGetPackages_ReturnsCatalog(t *testing.T) {
	service, _ := newCreditFixture(0)

	packages := service.GetPackages()
	require.Len(t, packages, 4)
	assert.Equal(t, "mini", packages[0].ID)
	assert.Equal(t, 6, packages[0].Credits)
}

func TestSimulatePurchase_CreditsAccount(t *testing.T) {
	service, accountID := newCreditFixture(2)

	resp, err := service.SimulatePurchase(context.Background(), accountID, "standart")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Standart", resp.Package.Name)
	assert.Equal(t, 2+12, resp.NewBalance)
}

func TestSimulatePurchase_UnknownPackage(t *testing.T) {
	service, accountID := newCreditFixture(2)

	_, err := service.SimulatePurchase(context.Background(), accountID, "mega")
	assert.ErrorIs(t, err, utils.ErrInvalidPackage)
}

func TestGetBalance_IdempotentReads(t *testing.T) {
	service, accountID := newCreditFixture(7)
	ctx := context.Background()

	first, err := service.GetBalance(ctx, accountID)
	require.NoError(t, err)
	second, err := service.GetBalance(ctx, accountID)
	require.NoError(t, err)

	assert.Equal(t, 7, first.Credits)
	assert.Equal(t, first.Credits, second.Credits)
}
