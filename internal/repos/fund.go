package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/types"
)

type FundRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error)
	GetAllWithRelations(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error)
	GetByID(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) (*types.Fund, error)
	Create(ctx context.Context, tx *gorm.DB, fund *types.Fund) error
	Update(ctx context.Context, tx *gorm.DB, fund *types.Fund) error
	Delete(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) error
}

type fundRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFundRepo(db *gorm.DB, baseLog *logger.Logger) FundRepo {
	repoLog := baseLog.With("repo", "FundRepo")
	return &fundRepo{db: db, log: repoLog}
}

func (fr *fundRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	results := []*types.Fund{}
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		fr.log.Error("Failed to list funds", "error", err)
		return nil, err
	}
	return results, nil
}

// GetAllWithRelations loads every fund with its investors and their
// transactions. Funds without investors (and investors without transactions)
// come back with empty slices, never nil.
func (fr *fundRepo) GetAllWithRelations(ctx context.Context, tx *gorm.DB) ([]*types.Fund, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	results := []*types.Fund{}
	if err := transaction.WithContext(ctx).
		Preload("Investors.Transactions").
		Find(&results).Error; err != nil {
		fr.log.Error("Failed to list funds with relations", "error", err)
		return nil, err
	}
	for _, fund := range results {
		if fund.Investors == nil {
			fund.Investors = []types.Investor{}
		}
		for i := range fund.Investors {
			if fund.Investors[i].Transactions == nil {
				fund.Investors[i].Transactions = []types.Transaction{}
			}
		}
	}
	return results, nil
}

func (fr *fundRepo) GetByID(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) (*types.Fund, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var result types.Fund
	if err := transaction.WithContext(ctx).
		Where("id = ?", fundID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		fr.log.Error("Failed to get fund", "fund_id", fundID, "error", err)
		return nil, err
	}
	return &result, nil
}

func (fr *fundRepo) Create(ctx context.Context, tx *gorm.DB, fund *types.Fund) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if err := transaction.WithContext(ctx).Create(fund).Error; err != nil {
		fr.log.Error("Failed to create fund", "error", err)
		return err
	}
	return nil
}

func (fr *fundRepo) Update(ctx context.Context, tx *gorm.DB, fund *types.Fund) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	// Full replace: every column is written, no partial-update semantics.
	if err := transaction.WithContext(ctx).
		Model(&types.Fund{}).
		Where("id = ?", fund.ID).
		Select("name", "currency", "launch_date").
		Updates(fund).Error; err != nil {
		fr.log.Error("Failed to update fund", "fund_id", fund.ID, "error", err)
		return err
	}
	return nil
}

// Delete removes the fund and, via the cascade constraints, its investors and
// their transactions. Deleting an unknown id is a no-op.
func (fr *fundRepo) Delete(ctx context.Context, tx *gorm.DB, fundID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if err := transaction.WithContext(ctx).
		Where("id = ?", fundID).
		Delete(&types.Fund{}).Error; err != nil {
		fr.log.Error("Failed to delete fund", "fund_id", fundID, "error", err)
		return err
	}
	return nil
}
