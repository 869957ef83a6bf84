package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read DTOs carry every field including the identity. Create DTOs omit the
// identity; it is generated when the DTO is converted to an entity. Update
// DTOs carry the identity plus the full replacement field set.

type FundDTO struct {
	FundID     uuid.UUID `json:"fund_id"`
	Name       string    `json:"name"`
	Currency   string    `json:"currency"`
	LaunchDate time.Time `json:"launch_date"`
}

type FundCreateDTO struct {
	Name       string    `json:"name" binding:"required,max=100"`
	Currency   string    `json:"currency" binding:"required,len=3"`
	LaunchDate time.Time `json:"launch_date"`
}

type FundUpdateDTO struct {
	FundID     uuid.UUID `json:"fund_id" binding:"required"`
	Name       string    `json:"name" binding:"required,max=100"`
	Currency   string    `json:"currency" binding:"required,len=3"`
	LaunchDate time.Time `json:"launch_date"`
}

type InvestorDTO struct {
	InvestorID uuid.UUID `json:"investor_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	FundID     uuid.UUID `json:"fund_id"`
}

type InvestorCreateDTO struct {
	FullName string    `json:"full_name" binding:"required,max=150"`
	Email    string    `json:"email" binding:"required,email"`
	FundID   uuid.UUID `json:"fund_id" binding:"required"`
}

type InvestorUpdateDTO struct {
	InvestorID uuid.UUID `json:"investor_id" binding:"required"`
	FullName   string    `json:"full_name" binding:"required,max=150"`
	Email      string    `json:"email" binding:"required,email"`
	FundID     uuid.UUID `json:"fund_id" binding:"required"`
}

type TransactionDTO struct {
	TransactionID   uuid.UUID       `json:"transaction_id"`
	InvestorID      uuid.UUID       `json:"investor_id"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
}

type TransactionCreateDTO struct {
	InvestorID      uuid.UUID       `json:"investor_id" binding:"required"`
	Type            TransactionType `json:"type" binding:"required,oneof=subscription redemption"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate time.Time       `json:"transaction_date"`
}

type TransactionUpdateDTO struct {
	TransactionID   uuid.UUID       `json:"transaction_id" binding:"required"`
	InvestorID      uuid.UUID       `json:"investor_id" binding:"required"`
	Type            TransactionType `json:"type" binding:"required,oneof=subscription redemption"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// FundTransactionSummaryDTO is the per-fund aggregate of subscribed and
// redeemed amounts across all transactions of all of the fund's investors.
type FundTransactionSummaryDTO struct {
	FundID          uuid.UUID       `json:"fund_id"`
	FundName        string          `json:"fund_name"`
	TotalSubscribed decimal.Decimal `json:"total_subscribed"`
	TotalRedeemed   decimal.Decimal `json:"total_redeemed"`
}
