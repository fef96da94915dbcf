package router

import (
	"log/slog"

	"github.com/renancoelho1710/organizofinanceiro/internal/config"
	"github.com/renancoelho1710/organizofinanceiro/internal/handler"
	"github.com/renancoelho1710/organizofinanceiro/internal/importer"
	"github.com/renancoelho1710/organizofinanceiro/internal/middleware"
	"github.com/renancoelho1710/organizofinanceiro/internal/store"

	"github.com/gin-gonic/gin"
)

// Setup configures the gin engine and the /api routes.
func Setup(cfg *config.Config, s *store.Store, logger *slog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.MaxMultipartMemory = cfg.App.ImportMaxBytes

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(s, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	api.POST("/auth/login", authHandler.Login)

	// every other endpoint runs with a resolved principal: the demo user by
	// default, the token's user when a Bearer token is sent
	protected := api.Group("")
	protected.Use(
		middleware.Principal(cfg.JWT.Secret, cfg.App.DemoUsername, s),
		middleware.Audit(s.DB()),
	)

	protected.GET("/user", handler.GetUser)

	dashboardHandler := handler.NewDashboardHandler(s, cfg.App.RecentLimit, cfg.App.UpcomingLimit)
	protected.GET("/dashboard", dashboardHandler.Get)

	txHandler := handler.NewTransactionHandler(s)
	protected.GET("/transactions", txHandler.List)
	protected.POST("/transactions", txHandler.Create)
	protected.PUT("/transactions/:id", txHandler.Update)
	protected.DELETE("/transactions/:id", txHandler.Delete)

	categoryHandler := handler.NewCategoryHandler(s)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.PUT("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	billHandler := handler.NewBillHandler(s)
	protected.GET("/bills", billHandler.List)
	protected.POST("/bills", billHandler.Create)
	protected.PUT("/bills/:id", billHandler.Update)
	protected.DELETE("/bills/:id", billHandler.Delete)

	cardHandler := handler.NewCreditCardHandler(s)
	protected.GET("/credit-cards", cardHandler.List)
	protected.POST("/credit-cards", cardHandler.Create)
	protected.PUT("/credit-cards/:id", cardHandler.Update)
	protected.DELETE("/credit-cards/:id", cardHandler.Delete)

	goalHandler := handler.NewSavingsGoalHandler(s)
	protected.GET("/savings-goals", goalHandler.List)
	protected.POST("/savings-goals", goalHandler.Create)
	protected.PUT("/savings-goals/:id", goalHandler.Update)
	protected.DELETE("/savings-goals/:id", goalHandler.Delete)

	importHandler := handler.NewImportHandler(importer.New(s), cfg.App.ImportMaxBytes)
	protected.POST("/import", importHandler.Import)

	exportHandler := handler.NewExportHandler(s)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
