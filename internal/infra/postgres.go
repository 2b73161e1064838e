package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gymtrack/internal/config"
	"gymtrack/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	return db
}

// Migrate keeps the five logical tables in step with the entity structs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Package{},
		&db_models.Trainer{},
		&db_models.Purchase{},
		&db_models.Session{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
