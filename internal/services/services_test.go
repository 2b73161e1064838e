package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymtrack/internal/config"
	"gymtrack/internal/infra"
	"gymtrack/internal/models/db_models"
	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

// fixture wires the real repositories and services over an in-memory
// database, the same shape main assembles through fx.
type fixture struct {
	db  *gorm.DB
	cfg *config.Config

	accountRepo  repositories.AccountRepository
	purchaseRepo repositories.PurchaseRepository
	sessionRepo  repositories.SessionRepository

	accounts  services.AccountServiceInterface
	purchases services.PurchaseServiceInterface
	sessions  services.SessionServiceInterface
	reports   services.ReportServiceInterface
	catalog   services.CatalogServiceInterface
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, infra.Migrate(db))

	cfg := &config.Config{
		JWTSecret:        []byte("test-secret"),
		TokenTTL:         time.Hour,
		SessionDurations: []int{30, 45},
	}

	accountRepo := repositories.NewAccountRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	packageRepo := repositories.NewPackageRepository(db)
	trainerRepo := repositories.NewTrainerRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	return &fixture{
		db:           db,
		cfg:          cfg,
		accountRepo:  accountRepo,
		purchaseRepo: purchaseRepo,
		sessionRepo:  sessionRepo,
		accounts:     services.NewAccountService(cfg, accountRepo, purchaseRepo),
		purchases:    services.NewPurchaseService(purchaseRepo, packageRepo, accountRepo),
		sessions:     services.NewSessionService(db, cfg, sessionRepo, purchaseRepo, accountRepo, trainerRepo),
		reports:      services.NewReportService(reportRepo, purchaseRepo, sessionRepo),
		catalog:      services.NewCatalogService(packageRepo, trainerRepo),
	}
}

func (f *fixture) account(t *testing.T, email, name string) *db_models.Account {
	t.Helper()
	account := &db_models.Account{
		GoogleSub: "sub-" + uuid.NewString(),
		Email:     email,
		FullName:  name,
		Role:      db_models.RoleClient,
		IsActive:  true,
	}
	require.NoError(t, f.db.Create(account).Error)
	return account
}

func (f *fixture) purchase(t *testing.T, owner uuid.UUID, duration, total int, cost float64) *db_models.Purchase {
	t.Helper()
	purchase := &db_models.Purchase{
		OwnerID:           owner,
		DurationMinutes:   duration,
		NumPeople:         1,
		TotalSessions:     total,
		SessionsRemaining: total,
		Cost:              cost,
		PurchaseDate:      time.Now().UTC(),
	}
	require.NoError(t, f.db.Create(purchase).Error)
	return purchase
}

func (f *fixture) sharedPurchase(t *testing.T, owner uuid.UUID, partnerEmail string, partnerID *uuid.UUID, duration, total int, cost float64) *db_models.Purchase {
	t.Helper()
	purchase := &db_models.Purchase{
		OwnerID:           owner,
		DurationMinutes:   duration,
		NumPeople:         2,
		TotalSessions:     total,
		SessionsRemaining: total,
		Cost:              cost,
		PurchaseDate:      time.Now().UTC(),
		PartnerEmail:      &partnerEmail,
		PartnerAccountID:  partnerID,
	}
	require.NoError(t, f.db.Create(purchase).Error)
	return purchase
}

func identityFor(email, name string) *infra.Identity {
	return &infra.Identity{
		Subject:       "sub-" + email,
		Email:         email,
		EmailVerified: true,
		FullName:      name,
		RawClaims:     []byte(`{}`),
	}
}
