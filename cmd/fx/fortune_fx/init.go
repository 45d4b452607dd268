package fortune_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"falgoritma/internal/config"
	"falgoritma/internal/repositories"
	"falgoritma/internal/services"
)

var Module = fx.Provide(
	provideFortuneRepo, provideLLMClient, provideFortuneService)

func provideFortuneRepo(db *gorm.DB) repositories.FortuneRepository {
	return repositories.NewFortuneRepository(db)
}

func provideLLMClient(prompt *config.PromptTemplate) services.LLMClientInterface {
	return services.NewOpenAIFortuneClient(os.Getenv("OPENAI_API_KEY"), prompt)
}

func provideFortuneService(
	accountRepo repositories.AccountRepository,
	fortuneRepo repositories.FortuneRepository,
	llmClient services.LLMClientInterface) services.FortuneServiceInterface {
	return services.NewFortuneService(accountRepo, fortuneRepo, llmClient)
}
