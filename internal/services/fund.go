package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fundsinvestors/backend/internal/platform/apierr"
	"github.com/fundsinvestors/backend/internal/platform/logger"
	"github.com/fundsinvestors/backend/internal/repos"
	"github.com/fundsinvestors/backend/internal/types"
)

// ErrNilPayload is returned when a create or update call arrives without a
// payload. Handlers map it to a 400 distinct from field validation failures.
var ErrNilPayload = apierr.New(http.StatusBadRequest, "nil_payload", errors.New("payload is required"))

type FundService interface {
	GetAll(ctx context.Context) ([]types.FundDTO, error)
	GetByID(ctx context.Context, fundID uuid.UUID) (*types.FundDTO, error)
	Create(ctx context.Context, dto *types.FundCreateDTO) (*types.FundDTO, error)
	Update(ctx context.Context, dto *types.FundUpdateDTO) error
	Delete(ctx context.Context, fundID uuid.UUID) error
	GetTransactionSummary(ctx context.Context) ([]types.FundTransactionSummaryDTO, error)
}

type fundService struct {
	db       *gorm.DB
	log      *logger.Logger
	fundRepo repos.FundRepo
}

func NewFundService(db *gorm.DB, log *logger.Logger, fundRepo repos.FundRepo) FundService {
	serviceLog := log.With("service", "FundService")
	return &fundService{db: db, log: serviceLog, fundRepo: fundRepo}
}

func (fs *fundService) GetAll(ctx context.Context) ([]types.FundDTO, error) {
	funds, err := fs.fundRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	return lo.Map(funds, func(fund *types.Fund, _ int) types.FundDTO {
		return toFundDTO(fund)
	}), nil
}

func (fs *fundService) GetByID(ctx context.Context, fundID uuid.UUID) (*types.FundDTO, error) {
	fund, err := fs.fundRepo.GetByID(ctx, nil, fundID)
	if err != nil {
		return nil, err
	}
	if fund == nil {
		return nil, nil
	}
	dto := toFundDTO(fund)
	return &dto, nil
}

func (fs *fundService) Create(ctx context.Context, dto *types.FundCreateDTO) (*types.FundDTO, error) {
	if dto == nil {
		return nil, ErrNilPayload
	}

	fund := newFundFromCreateDTO(dto)
	if err := fs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fs.fundRepo.Create(ctx, tx, fund)
	}); err != nil {
		return nil, err
	}
	out := toFundDTO(fund)
	return &out, nil
}

func (fs *fundService) Update(ctx context.Context, dto *types.FundUpdateDTO) error {
	if dto == nil {
		return ErrNilPayload
	}

	fund := &types.Fund{
		ID:         dto.FundID,
		Name:       dto.Name,
		Currency:   dto.Currency,
		LaunchDate: dto.LaunchDate,
	}
	return fs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fs.fundRepo.Update(ctx, tx, fund)
	})
}

func (fs *fundService) Delete(ctx context.Context, fundID uuid.UUID) error {
	return fs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fs.fundRepo.Delete(ctx, tx, fundID)
	})
}

// GetTransactionSummary computes, per fund, the total subscribed and total
// redeemed amounts across all transactions of all of the fund's investors.
// Every fund appears exactly once; funds without investors or transactions
// report zero for both totals. Sums use decimal arithmetic, so monetary
// amounts are exact to the stored precision.
func (fs *fundService) GetTransactionSummary(ctx context.Context) ([]types.FundTransactionSummaryDTO, error) {
	funds, err := fs.fundRepo.GetAllWithRelations(ctx, nil)
	if err != nil {
		return nil, err
	}

	summaries := make([]types.FundTransactionSummaryDTO, 0, len(funds))
	for _, fund := range funds {
		totalSubscribed := decimal.Zero
		totalRedeemed := decimal.Zero
		for _, investor := range fund.Investors {
			for _, txn := range investor.Transactions {
				switch txn.Type {
				case types.TransactionTypeSubscription:
					totalSubscribed = totalSubscribed.Add(txn.Amount)
				case types.TransactionTypeRedemption:
					totalRedeemed = totalRedeemed.Add(txn.Amount)
				}
			}
		}
		summaries = append(summaries, types.FundTransactionSummaryDTO{
			FundID:          fund.ID,
			FundName:        fund.Name,
			TotalSubscribed: totalSubscribed,
			TotalRedeemed:   totalRedeemed,
		})
	}
	return summaries, nil
}

func toFundDTO(fund *types.Fund) types.FundDTO {
	return types.FundDTO{
		FundID:     fund.ID,
		Name:       fund.Name,
		Currency:   fund.Currency,
		LaunchDate: fund.LaunchDate,
	}
}

func newFundFromCreateDTO(dto *types.FundCreateDTO) *types.Fund {
	return &types.Fund{
		ID:         uuid.New(),
		Name:       dto.Name,
		Currency:   dto.Currency,
		LaunchDate: dto.LaunchDate,
	}
}
