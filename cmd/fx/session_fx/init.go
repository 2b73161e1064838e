package session_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/config"
	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(provideSessionRepo, provideSessionService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideSessionService(
	db *gorm.DB,
	cfg *config.Config,
	sessionRepo repositories.SessionRepository,
	purchaseRepo repositories.PurchaseRepository,
	accountRepo repositories.AccountRepository,
	trainerRepo repositories.TrainerRepository,
) services.SessionServiceInterface {
	return services.NewSessionService(db, cfg, sessionRepo, purchaseRepo, accountRepo, trainerRepo)
}
