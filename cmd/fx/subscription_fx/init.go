package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"falgoritma/internal/config"
	"falgoritma/internal/repositories"
	"falgoritma/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	accountRepo repositories.AccountRepository,
	catalog *config.Catalog) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo, accountRepo, catalog)
}
