package report_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/internal/repositories"
	"gymtrack/internal/services"
)

var Module = fx.Provide(provideReportRepo, provideReportService)

func provideReportRepo(db *gorm.DB) repositories.ReportRepository {
	return repositories.NewReportRepository(db)
}

func provideReportService(
	reportRepo repositories.ReportRepository,
	purchaseRepo repositories.PurchaseRepository,
	sessionRepo repositories.SessionRepository,
) services.ReportServiceInterface {
	return services.NewReportService(reportRepo, purchaseRepo, sessionRepo)
}
