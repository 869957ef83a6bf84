package types

import (
	"time"

	"github.com/google/uuid"
)

type Fund struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"fund_id"`
	Name       string     `gorm:"size:100;not null;column:name" json:"name"`
	Currency   string     `gorm:"size:3;not null;column:currency" json:"currency"`
	LaunchDate time.Time  `gorm:"not null;column:launch_date" json:"launch_date"`
	Investors  []Investor `gorm:"foreignKey:FundID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Fund) TableName() string {
	return "fund"
}
