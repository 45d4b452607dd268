package user_fx

import (
	"go.uber.org/fx"

	"falgoritma/internal/repositories"
	"falgoritma/internal/services"
)

var Module = fx.Provide(
	provideUserService)

func provideUserService(accountRepo repositories.AccountRepository) services.UserServiceInterface {
	return services.NewUserService(accountRepo)
}
