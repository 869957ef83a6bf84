package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/repos"
	"github.com/fundsinvestors/backend/internal/types"
)

type InvestorService interface {
	GetAll(ctx context.Context) ([]types.InvestorDTO, error)
	GetByID(ctx context.Context, investorID uuid.UUID) (*types.InvestorDTO, error)
	Create(ctx context.Context, dto *types.InvestorCreateDTO) (*types.InvestorDTO, error)
	Update(ctx context.Context, dto *types.InvestorUpdateDTO) error
	Delete(ctx context.Context, investorID uuid.UUID) error
}

type investorService struct {
	db           *gorm.DB
	log          *logger.Logger
	investorRepo repos.InvestorRepo
}

func NewInvestorService(db *gorm.DB, log *logger.Logger, investorRepo repos.InvestorRepo) InvestorService {
	serviceLog := log.With("service", "InvestorService")
	return &investorService{db: db, log: serviceLog, investorRepo: investorRepo}
}

func (is *investorService) GetAll(ctx context.Context) ([]types.InvestorDTO, error) {
	investors, err := is.investorRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	return lo.Map(investors, func(investor *types.Investor, _ int) types.InvestorDTO {
		return toInvestorDTO(investor)
	}), nil
}

func (is *investorService) GetByID(ctx context.Context, investorID uuid.UUID) (*types.InvestorDTO, error) {
	investor, err := is.investorRepo.GetByID(ctx, nil, investorID)
	if err != nil {
		return nil, err
	}
	if investor == nil {
		return nil, nil
	}
	dto := toInvestorDTO(investor)
	return &dto, nil
}

func (is *investorService) Create(ctx context.Context, dto *types.InvestorCreateDTO) (*types.InvestorDTO, error) {
	if dto == nil {
		return nil, ErrNilPayload
	}

	investor := &types.Investor{
		ID:       uuid.New(),
		FullName: dto.FullName,
		Email:    dto.Email,
		FundID:   dto.FundID,
	}
	if err := is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return is.investorRepo.Create(ctx, tx, investor)
	}); err != nil {
		return nil, err
	}
	out := toInvestorDTO(investor)
	return &out, nil
}

func (is *investorService) Update(ctx context.Context, dto *types.InvestorUpdateDTO) error {
	if dto == nil {
		return ErrNilPayload
	}

	investor := &types.Investor{
		ID:       dto.InvestorID,
		FullName: dto.FullName,
		Email:    dto.Email,
		FundID:   dto.FundID,
	}
	return is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return is.investorRepo.Update(ctx, tx, investor)
	})
}

func (is *investorService) Delete(ctx context.Context, investorID uuid.UUID) error {
	return is.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return is.investorRepo.Delete(ctx, tx, investorID)
	})
}

func toInvestorDTO(investor *types.Investor) types.InvestorDTO {
	return types.InvestorDTO{
		InvestorID: investor.ID,
		FullName:   investor.FullName,
		Email:      investor.Email,
		FundID:     investor.FundID,
	}
}
