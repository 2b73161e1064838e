package repositories_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymtrack/internal/infra"
	"gymtrack/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled :memory: database is one database per connection; pin the pool
	// to a single connection so every query sees the same schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.Migrate(db))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email, name string) *db_models.Account {
	t.Helper()
	account := &db_models.Account{
		GoogleSub: "sub-" + uuid.NewString(),
		Email:     email,
		FullName:  name,
		Role:      db_models.RoleClient,
		IsActive:  true,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

type purchaseSeed struct {
	owner        uuid.UUID
	duration     int
	total        int
	remaining    int
	cost         float64
	date         time.Time
	partnerEmail string
	partnerID    *uuid.UUID
}

func seedPurchase(t *testing.T, db *gorm.DB, seed purchaseSeed) *db_models.Purchase {
	t.Helper()
	if seed.date.IsZero() {
		seed.date = time.Now().UTC()
	}
	purchase := &db_models.Purchase{
		OwnerID:           seed.owner,
		DurationMinutes:   seed.duration,
		NumPeople:         1,
		TotalSessions:     seed.total,
		SessionsRemaining: seed.remaining,
		Cost:              seed.cost,
		PurchaseDate:      seed.date,
		PartnerAccountID:  seed.partnerID,
	}
	if seed.partnerEmail != "" {
		purchase.PartnerEmail = &seed.partnerEmail
		purchase.NumPeople = 2
	}
	require.NoError(t, db.Create(purchase).Error)
	return purchase
}

func seedSession(t *testing.T, db *gorm.DB, purchase *db_models.Purchase, creator uuid.UUID, partner *uuid.UUID) *db_models.Session {
	t.Helper()
	session := &db_models.Session{
		PurchaseID:       purchase.ID,
		CreatedByID:      creator,
		SessionDate:      time.Now().UTC(),
		DurationMinutes:  purchase.DurationMinutes,
		Trainer:          "Rachel",
		PartnerAccountID: partner,
	}
	require.NoError(t, db.Create(session).Error)
	return session
}
