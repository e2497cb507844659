package models

import (
	"time"

	"github.com/shopspring/decimal"

	"accountsforge/internal/shared/constants"
)

type ExpenseModel struct {
	ID          uint            `gorm:"primaryKey"`
	OwnerID     uint            `gorm:"not null;index:idx_expenses_owner_status"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Category    string          `gorm:"size:100;not null"`
	Description string          `gorm:"size:2000"`
	Status      string          `gorm:"size:20;not null;default:'pending';index:idx_expenses_owner_status"`
	ReviewerID  *uint
	ReviewedAt  *time.Time
	AdminNote   string `gorm:"size:2000"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ExpenseModel) TableName() string {
	return constants.TableExpenses
}
