package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/types"
)

type InvestorRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Investor, error)
	GetByID(ctx context.Context, tx *gorm.DB, investorID uuid.UUID) (*types.Investor, error)
	GetByFundIDs(ctx context.Context, tx *gorm.DB, fundIDs []uuid.UUID) ([]*types.Investor, error)
	Create(ctx context.Context, tx *gorm.DB, investor *types.Investor) error
	Update(ctx context.Context, tx *gorm.DB, investor *types.Investor) error
	Delete(ctx context.Context, tx *gorm.DB, investorID uuid.UUID) error
}

type investorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInvestorRepo(db *gorm.DB, baseLog *logger.Logger) InvestorRepo {
	repoLog := baseLog.With("repo", "InvestorRepo")
	return &investorRepo{db: db, log: repoLog}
}

func (ir *investorRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Investor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	results := []*types.Investor{}
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		ir.log.Error("Failed to list investors", "error", err)
		return nil, err
	}
	return results, nil
}

func (ir *investorRepo) GetByID(ctx context.Context, tx *gorm.DB, investorID uuid.UUID) (*types.Investor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	var result types.Investor
	if err := transaction.WithContext(ctx).
		Where("id = ?", investorID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		ir.log.Error("Failed to get investor", "investor_id", investorID, "error", err)
		return nil, err
	}
	return &result, nil
}

func (ir *investorRepo) GetByFundIDs(ctx context.Context, tx *gorm.DB, fundIDs []uuid.UUID) ([]*types.Investor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	results := []*types.Investor{}
	if len(fundIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("fund_id IN ?", fundIDs).
		Find(&results).Error; err != nil {
		ir.log.Error("Failed to list investors by fund", "error", err)
		return nil, err
	}
	return results, nil
}

func (ir *investorRepo) Create(ctx context.Context, tx *gorm.DB, investor *types.Investor) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if err := transaction.WithContext(ctx).Create(investor).Error; err != nil {
		ir.log.Error("Failed to create investor", "error", err)
		return err
	}
	return nil
}

func (ir *investorRepo) Update(ctx context.Context, tx *gorm.DB, investor *types.Investor) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Investor{}).
		Where("id = ?", investor.ID).
		Select("full_name", "email", "fund_id").
		Updates(investor).Error; err != nil {
		ir.log.Error("Failed to update investor", "investor_id", investor.ID, "error", err)
		return err
	}
	return nil
}

func (ir *investorRepo) Delete(ctx context.Context, tx *gorm.DB, investorID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", investorID).
		Delete(&types.Investor{}).Error; err != nil {
		ir.log.Error("Failed to delete investor", "investor_id", investorID, "error", err)
		return err
	}
	return nil
}
