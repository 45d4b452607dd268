package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"falgoritma/internal/models/request_models"
	"falgoritma/internal/models/response_models"
	"falgoritma/internal/repositories"
	"falgoritma/pkg/utils"
)

// Credits granted once, when the profile is first completed.
const OnboardingBonusCredits = 6

type UserServiceInterface interface {
	CompleteOnboarding(ctx context.Context, accountID uuid.UUID, req request_models.OnboardingRequest) (*response_models.AccountResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
}

type UserService struct {
	accountRepo repositories.AccountRepository
}

func NewUserService(accountRepo repositories.AccountRepository) UserServiceInterface {
	return &UserService{
		accountRepo: accountRepo,
	}
}

func (u *UserService) CompleteOnboarding(ctx context.Context, accountID uuid.UUID, req request_models.OnboardingRequest) (*response_models.AccountResponse, error) {

	account, err := u.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.OnboardingCompleted {
		return nil, utils.ErrOnboardingCompleted
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, utils.ErrInvalidBirthDate
	}

	fields := map[string]interface{}{
		"full_name":            req.FullName,
		"birth_date":           birthDate.Unix(),
		"relationship_status":  req.RelationshipStatus,
		"profession":           req.Profession,
		"onboarding_completed": true,
		"credits":              gorm.Expr("credits + ?", OnboardingBonusCredits),
	}

	if err := u.accountRepo.UpdateFields(ctx, accountID, fields); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Onboarding completed for user: %s, awarded %d credits", accountID, OnboardingBonusCredits)
	return u.GetProfile(ctx, accountID)
}

func (u *UserService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := u.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

// UpdateProfile only touches relationship status and profession; everything
// else on the profile is fixed after onboarding.
func (u *UserService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {

	fields := map[string]interface{}{}
	if req.RelationshipStatus != "" {
		fields["relationship_status"] = req.RelationshipStatus
	}
	if req.Profession != "" {
		fields["profession"] = req.Profession
	}

	if len(fields) > 0 {
		if err := u.accountRepo.UpdateFields(ctx, accountID, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
		log.Printf("Profile updated for user: %s", accountID)
	}

	return u.GetProfile(ctx, accountID)
}
