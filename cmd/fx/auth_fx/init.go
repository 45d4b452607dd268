package auth_fx

import (
	"context"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"falgoritma/internal/repositories"
	"falgoritma/internal/services"
	"falgoritma/pkg/federated"
)

var Module = fx.Provide(
	provideAccountRepo, provideGoogleVerifier, provideAppleVerifier, provideAuthService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideGoogleVerifier() *federated.GoogleVerifier {
	verifier, err := federated.NewGoogleVerifier(context.Background())
	if err != nil {
		log.Fatalf("Failed to init Google verifier: %v", err)
	}
	return verifier
}

func provideAppleVerifier() *federated.AppleVerifier {
	verifier, err := federated.NewAppleVerifier()
	if err != nil {
		log.Fatalf("Failed to init Apple verifier: %v", err)
	}
	return verifier
}

func provideAuthService(
	accountRepo repositories.AccountRepository,
	google *federated.GoogleVerifier,
	apple *federated.AppleVerifier) services.AuthServiceInterface {
	return services.NewAuthService(accountRepo, google, apple)
}
