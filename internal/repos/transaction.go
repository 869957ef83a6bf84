package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/types"
)

type TransactionRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Transaction, error)
	GetByID(ctx context.Context, tx *gorm.DB, transactionID uuid.UUID) (*types.Transaction, error)
	GetByInvestorIDs(ctx context.Context, tx *gorm.DB, investorIDs []uuid.UUID) ([]*types.Transaction, error)
	Create(ctx context.Context, tx *gorm.DB, transaction *types.Transaction) error
	Update(ctx context.Context, tx *gorm.DB, transaction *types.Transaction) error
	Delete(ctx context.Context, tx *gorm.DB, transactionID uuid.UUID) error
}

type transactionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTransactionRepo(db *gorm.DB, baseLog *logger.Logger) TransactionRepo {
	repoLog := baseLog.With("repo", "TransactionRepo")
	return &transactionRepo{db: db, log: repoLog}
}

func (tr *transactionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Transaction, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	results := []*types.Transaction{}
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		tr.log.Error("Failed to list transactions", "error", err)
		return nil, err
	}
	return results, nil
}

func (tr *transactionRepo) GetByID(ctx context.Context, tx *gorm.DB, transactionID uuid.UUID) (*types.Transaction, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result types.Transaction
	if err := transaction.WithContext(ctx).
		Where("id = ?", transactionID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tr.log.Error("Failed to get transaction", "transaction_id", transactionID, "error", err)
		return nil, err
	}
	return &result, nil
}

func (tr *transactionRepo) GetByInvestorIDs(ctx context.Context, tx *gorm.DB, investorIDs []uuid.UUID) ([]*types.Transaction, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	results := []*types.Transaction{}
	if len(investorIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("investor_id IN ?", investorIDs).
		Find(&results).Error; err != nil {
		tr.log.Error("Failed to list transactions by investor", "error", err)
		return nil, err
	}
	return results, nil
}

func (tr *transactionRepo) Create(ctx context.Context, tx *gorm.DB, transaction *types.Transaction) error {
	gtx := tx
	if gtx == nil {
		gtx = tr.db
	}

	if err := gtx.WithContext(ctx).Create(transaction).Error; err != nil {
		tr.log.Error("Failed to create transaction", "error", err)
		return err
	}
	return nil
}

func (tr *transactionRepo) Update(ctx context.Context, tx *gorm.DB, transaction *types.Transaction) error {
	gtx := tx
	if gtx == nil {
		gtx = tr.db
	}

	if err := gtx.WithContext(ctx).
		Model(&types.Transaction{}).
		Where("id = ?", transaction.ID).
		Select("investor_id", "type", "amount", "transaction_date").
		Updates(transaction).Error; err != nil {
		tr.log.Error("Failed to update transaction", "transaction_id", transaction.ID, "error", err)
		return err
	}
	return nil
}

func (tr *transactionRepo) Delete(ctx context.Context, tx *gorm.DB, transactionID uuid.UUID) error {
	gtx := tx
	if gtx == nil {
		gtx = tr.db
	}

	if err := gtx.WithContext(ctx).
		Where("id = ?", transactionID).
		Delete(&types.Transaction{}).Error; err != nil {
		tr.log.Error("Failed to delete transaction", "transaction_id", transactionID, "error", err)
		return err
	}
	return nil
}
