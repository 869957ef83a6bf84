package server

import (
	"github.com/gin-gonic/gin"

	"github.com/fundsinvestors/backend/internal/http/handlers"
	"github.com/fundsinvestors/backend/internal/http/middleware"
	"github.com/fundsinvestors/backend/internal/platform/logger"
)

type RouterConfig struct {
	Log                *logger.Logger
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	FundHandler        *handlers.FundHandler
	InvestorHandler    *handlers.InvestorHandler
	TransactionHandler *handlers.TransactionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(cfg.Log))
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS())

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/auth/token", cfg.AuthHandler.Token)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Fund
		api.GET("/fund", cfg.FundHandler.GetAll)
		api.GET("/fund/summary", cfg.FundHandler.GetTransactionSummary)
		api.GET("/fund/:id", cfg.FundHandler.GetByID)
		api.POST("/fund", cfg.FundHandler.Create)
		api.PUT("/fund/:id", cfg.FundHandler.Update)
		api.DELETE("/fund/:id", cfg.FundHandler.Delete)

		// Investor
		api.GET("/investor", cfg.InvestorHandler.GetAll)
		api.GET("/investor/:id", cfg.InvestorHandler.GetByID)
		api.POST("/investor", cfg.InvestorHandler.Create)
		api.PUT("/investor/:id", cfg.InvestorHandler.Update)
		api.DELETE("/investor/:id", cfg.InvestorHandler.Delete)

		// Transaction (no update/delete endpoints)
		api.GET("/transaction", cfg.TransactionHandler.GetAll)
		api.GET("/transaction/:id", cfg.TransactionHandler.GetByID)
		api.POST("/transaction", cfg.TransactionHandler.Create)
	}

	return router
}
