package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeSubscription TransactionType = "subscription"
	TransactionTypeRedemption   TransactionType = "redemption"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeSubscription || t == TransactionTypeRedemption
}

type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"transaction_id"`
	InvestorID      uuid.UUID       `gorm:"type:uuid;not null;index;column:investor_id" json:"investor_id"`
	Type            TransactionType `gorm:"size:16;not null;column:type" json:"type"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2);not null;column:amount" json:"amount"`
	TransactionDate time.Time       `gorm:"not null;column:transaction_date" json:"transaction_date"`
}

func (Transaction) TableName() string {
	return "transaction"
}
