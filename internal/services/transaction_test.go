package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/fundsinvestors/backend/internal/platform/apierr"
	"github.com/fundsinvestors/backend/internal/types"
)

func TestTransactionServiceCreateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTransactionService(env.db, env.log, env.transactionRepo)
	ctx := context.Background()

	fund := env.seedFund(t, "Fund", "USD")
	investor := env.seedInvestor(t, fund.ID, "Ada Lovelace", "ada@example.com")

	when := time.Date(2023, 7, 4, 9, 30, 0, 0, time.UTC)
	created, err := svc.Create(ctx, &types.TransactionCreateDTO{
		InvestorID:      investor.ID,
		Type:            types.TransactionTypeSubscription,
		Amount:          decimal.RequireFromString("750.25"),
		TransactionDate: when,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.TransactionID)

	got, err := svc.GetByID(ctx, created.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, investor.ID, got.InvestorID)
	require.Equal(t, types.TransactionTypeSubscription, got.Type)
	require.True(t, got.Amount.Equal(decimal.RequireFromString("750.25")))
}

func TestTransactionServiceCreateRejectsNonPositiveAmount(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTransactionService(env.db, env.log, env.transactionRepo)
	ctx := context.Background()

	fund := env.seedFund(t, "Fund", "USD")
	investor := env.seedInvestor(t, fund.ID, "Ada Lovelace", "ada@example.com")

	for _, raw := range []string{"0", "-10.00"} {
		created, err := svc.Create(ctx, &types.TransactionCreateDTO{
			InvestorID:      investor.ID,
			Type:            types.TransactionTypeRedemption,
			Amount:          decimal.RequireFromString(raw),
			TransactionDate: time.Now().UTC(),
		})
		require.Nil(t, created)
		require.Error(t, err)
		require.Equal(t, 400, apierr.StatusOf(err, 0))
	}
}

func TestTransactionServiceCreateNilPayloadRejected(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTransactionService(env.db, env.log, env.transactionRepo)

	created, err := svc.Create(context.Background(), nil)
	require.Nil(t, created)
	require.ErrorIs(t, err, ErrNilPayload)
}

func TestTransactionServiceUpdateThenGetReflectsUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTransactionService(env.db, env.log, env.transactionRepo)
	ctx := context.Background()

	fund := env.seedFund(t, "Fund", "USD")
	investor := env.seedInvestor(t, fund.ID, "Ada Lovelace", "ada@example.com")
	txn := env.seedTransaction(t, investor.ID, types.TransactionTypeSubscription, "10.00")

	require.NoError(t, svc.Update(ctx, &types.TransactionUpdateDTO{
		TransactionID:   txn.ID,
		InvestorID:      investor.ID,
		Type:            types.TransactionTypeRedemption,
		Amount:          decimal.RequireFromString("15.75"),
		TransactionDate: txn.TransactionDate,
	}))

	got, err := svc.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	require.Equal(t, types.TransactionTypeRedemption, got.Type)
	require.True(t, got.Amount.Equal(decimal.RequireFromString("15.75")))
}
