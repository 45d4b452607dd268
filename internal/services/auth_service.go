package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"falgoritma/internal/models/db_models"
	"falgoritma/internal/models/request_models"
	"falgoritma/internal/models/response_models"
	"falgoritma/internal/repositories"
	"falgoritma/pkg/federated"
	"falgoritma/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetMe(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	GoogleAuth(ctx context.Context, req request_models.GoogleAuthRequest) (*response_models.AuthResponse, error)
	AppleAuth(ctx context.Context, req request_models.AppleAuthRequest) (*response_models.AuthResponse, error)
}

type AuthService struct {
	accountRepo    repositories.AccountRepository
	googleVerifier federated.Verifier
	appleVerifier  federated.Verifier
}

func NewAuthService(
	accountRepo repositories.AccountRepository,
	googleVerifier federated.Verifier,
	appleVerifier federated.Verifier) AuthServiceInterface {
	return &AuthService{
		accountRepo:    accountRepo,
		googleVerifier: googleVerifier,
		appleVerifier:  appleVerifier,
	}
}

func (a *AuthService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error) {

	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("User registered: %s", account.Email)
	return a.issueToken(account)
}

func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Unknown email and wrong password are indistinguishable on purpose.
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	log.Printf("User logged in: %s", account.Email)
	return a.issueToken(account)
}

func (a *AuthService) GetMe(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AuthService) GoogleAuth(ctx context.Context, req request_models.GoogleAuthRequest) (*response_models.AuthResponse, error) {
	claims, err := a.googleVerifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	return a.federatedSignIn(ctx, "google", claims, claims.Name)
}

func (a *AuthService) AppleAuth(ctx context.Context, req request_models.AppleAuthRequest) (*response_models.AuthResponse, error) {
	claims, err := a.appleVerifier.Verify(ctx, req.IdentityToken)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = claims.Name
	}

	return a.federatedSignIn(ctx, "apple", claims, fullName)
}

// federatedSignIn implements find-or-create-or-link by email. A provider id
// already linked to the account is never overwritten: first-linked wins.
func (a *AuthService) federatedSignIn(ctx context.Context, provider string, claims *federated.ProviderClaims, fullName string) (*response_models.AuthResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if account == nil {
		account = &db_models.Account{
			Email:        claims.Email,
			PasswordHash: "",
			FullName:     fullName,
		}
		setProviderID(account, provider, claims.Subject)

		if err := a.accountRepo.Insert(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
		log.Printf("New user registered via %s: %s", provider, claims.Email)

	} else if providerID(account, provider) == "" {
		setProviderID(account, provider, claims.Subject)
		field := provider + "_id"
		if err := a.accountRepo.UpdateFields(ctx, account.ID, map[string]interface{}{field: claims.Subject}); err != nil {
			return nil, utils.ErrDatabaseError
		}
		log.Printf("%s account linked for user: %s", provider, claims.Email)
	}

	log.Printf("User logged in via %s: %s", provider, claims.Email)
	return a.issueToken(account)
}

func providerID(account *db_models.Account, provider string) string {
	if provider == "google" {
		return account.GoogleID
	}
	return account.AppleID
}

func setProviderID(account *db_models.Account, provider, id string) {
	if provider == "google" {
		account.GoogleID = id
	} else {
		account.AppleID = id
	}
}

func (a *AuthService) issueToken(account *db_models.Account) (*response_models.AuthResponse, error) {
	token, err := utils.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token: token,
		User:  toAccountResponse(account),
	}, nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	birthDate := ""
	if account.BirthDate != nil {
		birthDate = time.Unix(*account.BirthDate, 0).UTC().Format("2006-01-02")
	}

	return response_models.AccountResponse{
		ID:                  account.ID.String(),
		Email:               account.Email,
		FullName:            account.FullName,
		BirthDate:           birthDate,
		RelationshipStatus:  account.RelationshipStatus,
		Profession:          account.Profession,
		Credits:             account.Credits,
		IsPremium:           account.IsPremium,
		PremiumExpiresAt:    account.PremiumExpiresAt,
		OnboardingCompleted: account.OnboardingCompleted,
		CreatedAt:           account.CreatedAt,
	}
}
