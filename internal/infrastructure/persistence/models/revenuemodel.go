package models

import (
	"time"

	"github.com/shopspring/decimal"

	"accountsforge/internal/shared/constants"
)

type RevenueModel struct {
	ID             uint            `gorm:"primaryKey"`
	OwnerID        uint            `gorm:"not null;index:idx_revenues_owner_status"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Customer       string          `gorm:"size:255;not null"`
	InvoiceNumber  string          `gorm:"size:100"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	Status         string          `gorm:"size:20;not null;default:'pending';index:idx_revenues_owner_status"`
	ReviewerID     *uint
	ReviewedAt     *time.Time
	AdminNote      string `gorm:"size:2000"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (RevenueModel) TableName() string {
	return constants.TableRevenues
}
