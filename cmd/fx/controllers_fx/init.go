package controllers_fx

import (
	"go.uber.org/fx"

	"gymtrack/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewPurchaseController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewReportController),
	fx.Provide(controllers.NewCatalogController),
)
