package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/repos"
	"github.com/fundsinvestors/backend/internal/types"
)

type testEnv struct {
	db              *gorm.DB
	log             *logger.Logger
	fundRepo        repos.FundRepo
	investorRepo    repos.InvestorRepo
	transactionRepo repos.TransactionRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Fund{}, &types.Investor{}, &types.Transaction{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	t.Cleanup(log.Sync)

	return &testEnv{
		db:              db,
		log:             log,
		fundRepo:        repos.NewFundRepo(db, log),
		investorRepo:    repos.NewInvestorRepo(db, log),
		transactionRepo: repos.NewTransactionRepo(db, log),
	}
}

func (e *testEnv) seedFund(t *testing.T, name, currency string) *types.Fund {
	t.Helper()

	fund := &types.Fund{ID: uuid.New(), Name: name, Currency: currency, LaunchDate: time.Now().UTC()}
	require.NoError(t, e.fundRepo.Create(context.Background(), nil, fund))
	return fund
}

func (e *testEnv) seedInvestor(t *testing.T, fundID uuid.UUID, fullName, email string) *types.Investor {
	t.Helper()

	investor := &types.Investor{ID: uuid.New(), FullName: fullName, Email: email, FundID: fundID}
	require.NoError(t, e.investorRepo.Create(context.Background(), nil, investor))
	return investor
}

func (e *testEnv) seedTransaction(t *testing.T, investorID uuid.UUID, txnType types.TransactionType, amount string) *types.Transaction {
	t.Helper()

	txn := &types.Transaction{
		ID:              uuid.New(),
		InvestorID:      investorID,
		Type:            txnType,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: time.Now().UTC(),
	}
	require.NoError(t, e.transactionRepo.Create(context.Background(), nil, txn))
	return txn
}
