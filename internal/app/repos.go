package app

import (
	"gorm.io/gorm"

	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/repos"
)

type Repos struct {
	Fund        repos.FundRepo
	Investor    repos.InvestorRepo
	Transaction repos.TransactionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Fund:        repos.NewFundRepo(db, log),
		Investor:    repos.NewInvestorRepo(db, log),
		Transaction: repos.NewTransactionRepo(db, log),
	}
}
