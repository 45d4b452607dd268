package credit_fx

import (
	"go.uber.org/fx"

	"falgoritma/internal/config"
	"falgoritma/internal/repositories"
	"falgoritma/internal/services"
)

var Module = fx.Provide(
	provideCreditService)

func provideCreditService(accountRepo repositories.AccountRepository, catalog *config.Catalog) services.CreditServiceInterface {
	return services.NewCreditService(accountRepo, catalog)
}
