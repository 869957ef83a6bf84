package app

import (
	"github.com/fundsinvestors/backend/internal/http/handlers"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Fund        *handlers.FundHandler
	Investor    *handlers.InvestorHandler
	Transaction *handlers.TransactionHandler
}

func wireHandlers(serviceset Services) Handlers {
	return Handlers{
		Auth:        handlers.NewAuthHandler(serviceset.Auth),
		Fund:        handlers.NewFundHandler(serviceset.Fund),
		Investor:    handlers.NewInvestorHandler(serviceset.Investor),
		Transaction: handlers.NewTransactionHandler(serviceset.Transaction),
	}
}
