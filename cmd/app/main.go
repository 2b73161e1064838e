package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymtrack/cmd/fx/account_fx"
	"gymtrack/cmd/fx/catalog_fx"
	"gymtrack/cmd/fx/config_fx"
	"gymtrack/cmd/fx/controllers_fx"
	"gymtrack/cmd/fx/db_fx"
	"gymtrack/cmd/fx/identity_fx"
	"gymtrack/cmd/fx/purchase_fx"
	"gymtrack/cmd/fx/report_fx"
	"gymtrack/cmd/fx/session_fx"
	"gymtrack/internal/api/controllers"
	"gymtrack/internal/config"
	"gymtrack/internal/infra"
	"gymtrack/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		identity_fx.Module,
		account_fx.Module,
		purchase_fx.Module,
		session_fx.Module,
		catalog_fx.Module,
		report_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	authController *controllers.AuthController,
	purchaseController *controllers.PurchaseController,
	sessionController *controllers.SessionController,
	reportController *controllers.ReportController,
	catalogController *controllers.CatalogController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg, authController, purchaseController, sessionController, reportController, catalogController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	authController *controllers.AuthController,
	purchaseController *controllers.PurchaseController,
	sessionController *controllers.SessionController,
	reportController *controllers.ReportController,
	catalogController *controllers.CatalogController,
) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	authGroup.GET("/login", authController.Login)
	authGroup.GET("/callback", authController.Callback)
	authGroup.GET("/logout", authController.Logout)

	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret)

	r.GET("/me", auth, authController.Me)
	r.GET("/summary", auth, reportController.Summary)

	purchaseGroup := r.Group("/purchases", auth)
	purchaseGroup.POST("", purchaseController.Create)
	purchaseGroup.GET("", purchaseController.History)
	purchaseGroup.PUT("/:id", purchaseController.Update)
	purchaseGroup.DELETE("/:id", purchaseController.Delete)

	sessionGroup := r.Group("/sessions", auth)
	sessionGroup.POST("", sessionController.Log)
	sessionGroup.GET("", sessionController.History)
	sessionGroup.PUT("/:id", sessionController.Update)
	sessionGroup.DELETE("/:id", sessionController.Delete)

	reportGroup := r.Group("/reports", auth)
	reportGroup.GET("/trainers", reportController.Trainers)
	reportGroup.GET("/cost", reportController.Cost)

	r.GET("/packages", auth, catalogController.ListPackages)
	r.GET("/trainers", auth, catalogController.ListTrainers)

	adminGroup := r.Group("/admin", auth, middleware.RoleMiddleware("admin"))
	adminGroup.GET("/packages", catalogController.AdminListPackages)
	adminGroup.POST("/packages", catalogController.CreatePackage)
	adminGroup.PUT("/packages/:id", catalogController.UpdatePackage)
	adminGroup.DELETE("/packages/:id", catalogController.DeletePackage)
	adminGroup.GET("/trainers", catalogController.AdminListTrainers)
	adminGroup.POST("/trainers", catalogController.CreateTrainer)
	adminGroup.PUT("/trainers/:id", catalogController.UpdateTrainer)
	adminGroup.DELETE("/trainers/:id", catalogController.DeleteTrainer)
}
