package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/fundsinvestors/backend/internal/platform/apierr"
	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/repos"
	"github.com/fundsinvestors/backend/internal/types"
)

var errAmountNotPositive = apierr.New(http.StatusBadRequest, "validation_failed", errors.New("amount must be positive"))

type TransactionService interface {
	GetAll(ctx context.Context) ([]types.TransactionDTO, error)
	GetByID(ctx context.Context, transactionID uuid.UUID) (*types.TransactionDTO, error)
	Create(ctx context.Context, dto *types.TransactionCreateDTO) (*types.TransactionDTO, error)
	Update(ctx context.Context, dto *types.TransactionUpdateDTO) error
	Delete(ctx context.Context, transactionID uuid.UUID) error
}

type transactionService struct {
	db              *gorm.DB
	log             *logger.Logger
	transactionRepo repos.TransactionRepo
}

func NewTransactionService(db *gorm.DB, log *logger.Logger, transactionRepo repos.TransactionRepo) TransactionService {
	serviceLog := log.With("service", "TransactionService")
	return &transactionService{db: db, log: serviceLog, transactionRepo: transactionRepo}
}

func (ts *transactionService) GetAll(ctx context.Context) ([]types.TransactionDTO, error) {
	transactions, err := ts.transactionRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	return lo.Map(transactions, func(txn *types.Transaction, _ int) types.TransactionDTO {
		return toTransactionDTO(txn)
	}), nil
}

func (ts *transactionService) GetByID(ctx context.Context, transactionID uuid.UUID) (*types.TransactionDTO, error) {
	txn, err := ts.transactionRepo.GetByID(ctx, nil, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, nil
	}
	dto := toTransactionDTO(txn)
	return &dto, nil
}

func (ts *transactionService) Create(ctx context.Context, dto *types.TransactionCreateDTO) (*types.TransactionDTO, error) {
	if dto == nil {
		return nil, ErrNilPayload
	}
	if !dto.Amount.IsPositive() {
		return nil, errAmountNotPositive
	}

	txn := &types.Transaction{
		ID:              uuid.New(),
		InvestorID:      dto.InvestorID,
		Type:            dto.Type,
		Amount:          dto.Amount,
		TransactionDate: dto.TransactionDate,
	}
	if err := ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ts.transactionRepo.Create(ctx, tx, txn)
	}); err != nil {
		return nil, err
	}
	out := toTransactionDTO(txn)
	return &out, nil
}

func (ts *transactionService) Update(ctx context.Context, dto *types.TransactionUpdateDTO) error {
	if dto == nil {
		return ErrNilPayload
	}
	if !dto.Amount.IsPositive() {
		return errAmountNotPositive
	}

	txn := &types.Transaction{
		ID:              dto.TransactionID,
		InvestorID:      dto.InvestorID,
		Type:            dto.Type,
		Amount:          dto.Amount,
		TransactionDate: dto.TransactionDate,
	}
	return ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ts.transactionRepo.Update(ctx, tx, txn)
	})
}

func (ts *transactionService) Delete(ctx context.Context, transactionID uuid.UUID) error {
	return ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return ts.transactionRepo.Delete(ctx, tx, transactionID)
	})
}

func toTransactionDTO(txn *types.Transaction) types.TransactionDTO {
	return types.TransactionDTO{
		TransactionID:   txn.ID,
		InvestorID:      txn.InvestorID,
		Type:            txn.Type,
		Amount:          txn.Amount,
		TransactionDate: txn.TransactionDate,
	}
}
