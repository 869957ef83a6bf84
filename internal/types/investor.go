package types

import (
	"github.com/google/uuid"
)

type Investor struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"investor_id"`
	FullName     string        `gorm:"size:150;not null;column:full_name" json:"full_name"`
	Email        string        `gorm:"not null;column:email" json:"email"`
	FundID       uuid.UUID     `gorm:"type:uuid;not null;index;column:fund_id" json:"fund_id"`
	Transactions []Transaction `gorm:"foreignKey:InvestorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Investor) TableName() string {
	return "investor"
}
