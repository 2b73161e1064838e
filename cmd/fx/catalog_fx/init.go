package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(providePackageRepo, provideTrainerRepo, provideCatalogService)

func providePackageRepo(db *gorm.DB) repositories.PackageRepository {
	return repositories.NewPackageRepository(db)
}

func provideTrainerRepo(db *gorm.DB) repositories.TrainerRepository {
	return repositories.NewTrainerRepository(db)
}

func provideCatalogService(packageRepo repositories.PackageRepository, trainerRepo repositories.TrainerRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(packageRepo, trainerRepo)
}
