package models

import (
	"time"

	"github.com/shopspring/decimal"

	"accountsforge/internal/shared/constants"
)

// CommissionRecordModel carries a unique index on RevenueID: at most one
// commission per revenue, enforced by the store regardless of what the
// workflow logic does.
type CommissionRecordModel struct {
	ID        uint            `gorm:"primaryKey"`
	RevenueID uint            `gorm:"not null;uniqueIndex:idx_commission_records_revenue"`
	OwnerID   uint            `gorm:"not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	CreatedAt time.Time
}

func (CommissionRecordModel) TableName() string {
	return constants.TableCommissionRecords
}
