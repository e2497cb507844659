package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"accountsforge/internal/shared/constants"
)

type ClaimModel struct {
	ID          uint            `gorm:"primaryKey"`
	OwnerID     uint            `gorm:"not null;index:idx_claims_owner_status"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	ClaimType   string          `gorm:"size:100;not null"`
	Description string          `gorm:"size:2000"`
	ExpenseID   *uint           `gorm:"index"`
	RevenueID   *uint           `gorm:"index"`
	Status      string          `gorm:"size:20;not null;default:'pending';index:idx_claims_owner_status"`
	ReviewerID  *uint
	ReviewedAt  *time.Time
	AdminNote   string `gorm:"size:2000"`
	// PaymentInfo holds {method, reference}, set atomically with the paid
	// transition.
	PaymentInfo datatypes.JSON
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ClaimModel) TableName() string {
	return constants.TableClaims
}
