package purchase_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(providePurchaseRepo, providePurchaseService)

func providePurchaseRepo(db *gorm.DB) repositories.PurchaseRepository {
	return repositories.NewPurchaseRepository(db)
}

func providePurchaseService(
	purchaseRepo repositories.PurchaseRepository,
	packageRepo repositories.PackageRepository,
	accountRepo repositories.AccountRepository,
) services.PurchaseServiceInterface {
	return services.NewPurchaseService(purchaseRepo, packageRepo, accountRepo)
}
