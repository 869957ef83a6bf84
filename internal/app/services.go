package app

import (
	"gorm.io/gorm"

	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/services"
)

type Services struct {
	Auth        services.AuthService
	Fund        services.FundService
	Investor    services.InvestorService
	Transaction services.TransactionService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	return Services{
		Auth:        services.NewAuthService(log, cfg.JWTSecretKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTokenTTL),
		Fund:        services.NewFundService(db, log, reposet.Fund),
		Investor:    services.NewInvestorService(db, log, reposet.Investor),
		Transaction: services.NewTransactionService(db, log, reposet.Transaction),
	}
}
