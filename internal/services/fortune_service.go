package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"falgoritma/internal/models/db_models"
	"falgoritma/internal/models/request_models"
	"falgoritma/internal/models/response_models"
	"falgoritma/internal/repositories"
	"falgoritma/pkg/utils"
)

const (
	FortuneCost = 3
	maxPhotos   = 5

	// Sentinel used in prompts when a profile field was never filled in.
	unknownField = "Bilinmiyor"
)

type FortuneServiceInterface interface {
	CreateFortune(ctx context.Context, accountID uuid.UUID, req request_models.CreateFortuneRequest) (*response_models.FortuneResponse, error)
	ListFortunes(ctx context.Context, accountID uuid.UUID) ([]response_models.FortuneSummaryResponse, error)
	GetFortuneById(ctx context.Context, accountID uuid.UUID, fortuneID uuid.UUID) (*response_models.FortuneResponse, error)
}

type FortuneService struct {
	accountRepo repositories.AccountRepository
	fortuneRepo repositories.FortuneRepository
	llmClient   LLMClientInterface
}

func NewFortuneService(
	accountRepo repositories.AccountRepository,
	fortuneRepo repositories.FortuneRepository,
	llmClient LLMClientInterface) FortuneServiceInterface {
	return &FortuneService{
		accountRepo: accountRepo,
		fortuneRepo: fortuneRepo,
		llmClient:   llmClient,
	}
}

// CreateFortune runs the credit-gated workflow: affordability pre-check,
// subject resolution, one provider call, then record insert and debit in a
// single transaction. The pre-check is advisory only; the guarded debit
// inside InsertWithDebit enforces the balance under concurrency.
func (f *FortuneService) CreateFortune(ctx context.Context, accountID uuid.UUID, req request_models.CreateFortuneRequest) (*response_models.FortuneResponse, error) {

	if len(req.Photos) > maxPhotos {
		return nil, utils.ErrTooManyPhotos
	}

	account, err := f.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if account.Credits < FortuneCost {
		return nil, utils.ErrInsufficientCredits
	}

	subject, err := resolveSubject(account, req)
	if err != nil {
		return nil, err
	}

	log.Printf("Creating fortune for account: %s", accountID)

	interpretation, err := f.llmClient.GenerateInterpretation(ctx, req.Photos, subject)
	if err != nil {
		// No debit ever happens on generation failure.
		return nil, err
	}

	fortune := &db_models.Fortune{
		AccountID:      accountID,
		Photos:         req.Photos,
		ForSelf:        req.ForSelf,
		Interpretation: interpretation,
	}
	if !req.ForSelf && req.GuestData != nil {
		fortune.GuestName = req.GuestData.Name
		fortune.GuestGender = req.GuestData.Gender
		fortune.GuestBirthDate = req.GuestData.BirthDate
		fortune.GuestRelationshipStatus = req.GuestData.RelationshipStatus
		fortune.GuestProfession = req.GuestData.Profession
	}

	if err := f.fortuneRepo.InsertWithDebit(ctx, fortune, FortuneCost); err != nil {
		if errors.Is(err, utils.ErrInsufficientCredits) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	log.Printf("Fortune created: %s, credits deducted", fortune.ID)
	return toFortuneResponse(fortune), nil
}

func resolveSubject(account *db_models.Account, req request_models.CreateFortuneRequest) (PersonAttributes, error) {
	if req.ForSelf {
		return PersonAttributes{
			Name:               orUnknown(account.FullName, "Anonim"),
			BirthDate:          birthDateString(account.BirthDate),
			RelationshipStatus: orUnknown(account.RelationshipStatus, unknownField),
			Profession:         orUnknown(account.Profession, unknownField),
		}, nil
	}

	if req.GuestData == nil {
		return PersonAttributes{}, utils.ErrMissingGuestData
	}

	return PersonAttributes{
		Name:               req.GuestData.Name,
		BirthDate:          req.GuestData.BirthDate,
		RelationshipStatus: req.GuestData.RelationshipStatus,
		Profession:         req.GuestData.Profession,
		Gender:             req.GuestData.Gender,
	}, nil
}

func orUnknown(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func birthDateString(birthDate *int64) string {
	if birthDate == nil {
		return unknownField
	}
	return time.Unix(*birthDate, 0).UTC().Format("2006-01-02")
}

func (f *FortuneService) ListFortunes(ctx context.Context, accountID uuid.UUID) ([]response_models.FortuneSummaryResponse, error) {
	fortunes, err := f.fortuneRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.FortuneSummaryResponse, 0, len(fortunes))
	for _, fortune := range fortunes {
		summaries = append(summaries, response_models.FortuneSummaryResponse{
			ID:        fortune.ID.String(),
			CreatedAt: fortune.CreatedAt,
			ForSelf:   fortune.ForSelf,
			GuestName: fortune.GuestName,
			Preview:   previewOf(fortune.Interpretation),
		})
	}

	return summaries, nil
}

func (f *FortuneService) GetFortuneById(ctx context.Context, accountID uuid.UUID, fortuneID uuid.UUID) (*response_models.FortuneResponse, error) {
	fortune, err := f.fortuneRepo.FindById(ctx, fortuneID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if fortune == nil {
		return nil, utils.ErrFortuneNotFound
	}

	if fortune.AccountID != accountID {
		return nil, utils.ErrFortuneForbidden
	}

	return toFortuneResponse(fortune), nil
}

func previewOf(interpretation string) string {
	runes := []rune(interpretation)
	if len(runes) <= 100 {
		return interpretation
	}
	return string(runes[:100]) + "..."
}

func toFortuneResponse(fortune *db_models.Fortune) *response_models.FortuneResponse {
	return &response_models.FortuneResponse{
		ID:                      fortune.ID.String(),
		CreatedAt:               fortune.CreatedAt,
		Photos:                  fortune.Photos,
		ForSelf:                 fortune.ForSelf,
		GuestName:               fortune.GuestName,
		GuestGender:             fortune.GuestGender,
		GuestBirthDate:          fortune.GuestBirthDate,
		GuestRelationshipStatus: fortune.GuestRelationshipStatus,
		GuestProfession:         fortune.GuestProfession,
		Interpretation:          fortune.Interpretation,
	}
}
