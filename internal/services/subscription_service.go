package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"falgoritma/internal/config"
	"falgoritma/internal/models/db_models"
	"falgoritma/internal/models/request_models"
	"falgoritma/internal/models/response_models"
	"falgoritma/internal/repositories"
	"falgoritma/pkg/utils"
)

type SubscriptionServiceInterface interface {
	GetPlans() []config.SubscriptionPlan
	Subscribe(ctx context.Context, accountID uuid.UUID, req request_models.SubscribeRequest) (*response_models.SubscribeResponse, error)
	GetStatus(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionStatusResponse, error)
	Cancel(ctx context.Context, accountID uuid.UUID) error
}

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	accountRepo      repositories.AccountRepository
	catalog          *config.Catalog
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	accountRepo repositories.AccountRepository,
	catalog *config.Catalog) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		accountRepo:      accountRepo,
		catalog:          catalog,
	}
}

func (s *SubscriptionService) GetPlans() []config.SubscriptionPlan {
	return s.catalog.Plans()
}

func (s *SubscriptionService) Subscribe(ctx context.Context, accountID uuid.UUID, req request_models.SubscribeRequest) (*response_models.SubscribeResponse, error) {

	plan, ok := s.catalog.PlanByType(req.PlanType)
	if !ok {
		return nil, utils.ErrInvalidPlan
	}

	// At most one active subscription per account.
	existing, err := s.subscriptionRepo.FindActive(ctx, accountID, utils.NowUnixSeconds())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrSubscriptionExists
	}

	starts := utils.NowTR()
	var ends = starts
	switch plan.PlanType {
	case "weekly":
		ends = starts.AddDate(0, 0, 7)
	case "monthly":
		ends = starts.AddDate(0, 1, 0)
	case "yearly":
		ends = starts.AddDate(1, 0, 0)
	}

	snapshot, _ := json.Marshal(map[string]interface{}{
		"plan_id": plan.ID,
		"name":    plan.Name,
		"price":   plan.Price,
		"credits": plan.Credits,
	})

	sub := &db_models.Subscription{
		AccountID: accountID,
		PlanType:  plan.PlanType,
		Status:    db_models.SubStatusActive,
		StartsAt:  starts.Unix(),
		EndsAt:    ends.Unix(),
		Metadata:  datatypes.JSON(snapshot),
	}

	if err := s.subscriptionRepo.InsertWithPremium(ctx, sub, plan.Credits); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log.Printf("User %s subscribed to %s plan", accountID, plan.PlanType)

	return &response_models.SubscribeResponse{
		Subscription: toSubscriptionResponse(sub),
		Message:      fmt.Sprintf("%s planına başarıyla abone oldunuz! %d kredi hesabınıza eklendi.", plan.Name, plan.Credits),
	}, nil
}

func (s *SubscriptionService) GetStatus(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionStatusResponse, error) {

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	status := &response_models.SubscriptionStatusResponse{
		IsPremium:        account.IsPremium,
		PremiumExpiresAt: account.PremiumExpiresAt,
		Credits:          account.Credits,
	}

	active, err := s.subscriptionRepo.FindActive(ctx, accountID, utils.NowUnixSeconds())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if active != nil {
		resp := toSubscriptionResponse(active)
		status.ActiveSubscription = &resp
	}

	return status, nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, accountID uuid.UUID) error {

	active, err := s.subscriptionRepo.FindActive(ctx, accountID, utils.NowUnixSeconds())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if active == nil {
		return utils.ErrNoActiveSubscription
	}

	if err := s.subscriptionRepo.CancelWithClear(ctx, active); err != nil {
		return utils.ErrDatabaseError
	}

	log.Printf("User %s cancelled subscription", accountID)
	return nil
}

func toSubscriptionResponse(sub *db_models.Subscription) response_models.SubscriptionResponse {
	return response_models.SubscriptionResponse{
		ID:        sub.ID.String(),
		PlanType:  sub.PlanType,
		Status:    string(sub.Status),
		StartsAt:  sub.StartsAt,
		EndsAt:    sub.EndsAt,
		CreatedAt: sub.CreatedAt,
	}
}
