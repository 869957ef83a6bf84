package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fundsinvestors/backend/internal/types"
)

func TestFundServiceCreateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)
	ctx := context.Background()

	launch := time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(ctx, &types.FundCreateDTO{Name: "Balanced Growth", Currency: "USD", LaunchDate: launch})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.FundID)

	got, err := svc.GetByID(ctx, created.FundID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, created.FundID, got.FundID)
	require.Equal(t, "Balanced Growth", got.Name)
	require.Equal(t, "USD", got.Currency)
	require.True(t, got.LaunchDate.Equal(launch))
}

func TestFundServiceCreateNilPayloadRejected(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)

	created, err := svc.Create(context.Background(), nil)
	require.Nil(t, created)
	require.ErrorIs(t, err, ErrNilPayload)

	// Nothing was stored.
	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestFundServiceGetByIDMissingReturnsNil(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)

	got, err := svc.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFundServiceUpdateThenGetReflectsUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)
	ctx := context.Background()

	fund := env.seedFund(t, "Old", "USD")
	other := env.seedFund(t, "Bystander", "EUR")

	newLaunch := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Update(ctx, &types.FundUpdateDTO{
		FundID:     fund.ID,
		Name:       "Renamed",
		Currency:   "CHF",
		LaunchDate: newLaunch,
	}))

	got, err := svc.GetByID(ctx, fund.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Equal(t, "CHF", got.Currency)
	require.True(t, got.LaunchDate.Equal(newLaunch))

	gotOther, err := svc.GetByID(ctx, other.ID)
	require.NoError(t, err)
	require.Equal(t, "Bystander", gotOther.Name)
}

func TestFundServiceDeleteRemovesSubtree(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)
	ctx := context.Background()

	fund := env.seedFund(t, "Doomed", "USD")
	investor := env.seedInvestor(t, fund.ID, "Ada Lovelace", "ada@example.com")
	txn := env.seedTransaction(t, investor.ID, types.TransactionTypeSubscription, "100.00")

	require.NoError(t, svc.Delete(ctx, fund.ID))

	gotFund, err := svc.GetByID(ctx, fund.ID)
	require.NoError(t, err)
	require.Nil(t, gotFund)

	gotInvestor, err := env.investorRepo.GetByID(ctx, nil, investor.ID)
	require.NoError(t, err)
	require.Nil(t, gotInvestor)

	gotTxn, err := env.transactionRepo.GetByID(ctx, nil, txn.ID)
	require.NoError(t, err)
	require.Nil(t, gotTxn)
}

func TestFundServiceTransactionSummaryTwoFunds(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)

	fundA := env.seedFund(t, "Fund A", "USD")
	investorOne := env.seedInvestor(t, fundA.ID, "Investor One", "one@example.com")
	env.seedTransaction(t, investorOne.ID, types.TransactionTypeSubscription, "100.00")
	env.seedTransaction(t, investorOne.ID, types.TransactionTypeRedemption, "50.00")

	fundB := env.seedFund(t, "Fund B", "EUR")
	investorTwo := env.seedInvestor(t, fundB.ID, "Investor Two", "two@example.com")
	env.seedTransaction(t, investorTwo.ID, types.TransactionTypeSubscription, "200.00")
	env.seedTransaction(t, investorTwo.ID, types.TransactionTypeRedemption, "80.00")

	summaries, err := svc.GetTransactionSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byFund := map[uuid.UUID]types.FundTransactionSummaryDTO{}
	for _, s := range summaries {
		byFund[s.FundID] = s
	}

	a := byFund[fundA.ID]
	require.Equal(t, "Fund A", a.FundName)
	require.Equal(t, "100", a.TotalSubscribed.String())
	require.Equal(t, "50", a.TotalRedeemed.String())

	b := byFund[fundB.ID]
	require.Equal(t, "Fund B", b.FundName)
	require.Equal(t, "200", b.TotalSubscribed.String())
	require.Equal(t, "80", b.TotalRedeemed.String())
}

func TestFundServiceTransactionSummaryFundWithoutInvestors(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)

	fund := env.seedFund(t, "Lonely Fund", "USD")

	summaries, err := svc.GetTransactionSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, fund.ID, summaries[0].FundID)
	require.True(t, summaries[0].TotalSubscribed.IsZero())
	require.True(t, summaries[0].TotalRedeemed.IsZero())
}

func TestFundServiceTransactionSummaryInvestorWithoutTransactions(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)

	fund := env.seedFund(t, "Quiet Fund", "USD")
	env.seedInvestor(t, fund.ID, "Silent Partner", "silent@example.com")

	summaries, err := svc.GetTransactionSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.True(t, summaries[0].TotalSubscribed.IsZero())
	require.True(t, summaries[0].TotalRedeemed.IsZero())
}

func TestFundServiceTransactionSummaryExactDecimalSums(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)

	fund := env.seedFund(t, "Precise Fund", "USD")
	investor := env.seedInvestor(t, fund.ID, "Careful Investor", "careful@example.com")

	// 0.1 + 0.2 is the classic float trap; decimal sums must stay exact.
	env.seedTransaction(t, investor.ID, types.TransactionTypeSubscription, "0.10")
	env.seedTransaction(t, investor.ID, types.TransactionTypeSubscription, "0.20")
	env.seedTransaction(t, investor.ID, types.TransactionTypeRedemption, "0.15")

	summaries, err := svc.GetTransactionSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "0.3", summaries[0].TotalSubscribed.String())
	require.Equal(t, "0.15", summaries[0].TotalRedeemed.String())
}

func TestFundServiceUpdateNilPayloadRejected(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFundService(env.db, env.log, env.fundRepo)

	err := svc.Update(context.Background(), nil)
	require.True(t, errors.Is(err, ErrNilPayload))
}
