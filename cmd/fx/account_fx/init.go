package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/config"
	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(cfg *config.Config, accountRepo repositories.AccountRepository, purchaseRepo repositories.PurchaseRepository) services.AccountServiceInterface {
	return services.NewAccountService(cfg, accountRepo, purchaseRepo)
}
