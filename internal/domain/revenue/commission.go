package revenue

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CommissionRecord is the derived payout created exactly once when a
// revenue is approved. At most one record exists per revenue; the unique
// index on revenue_id enforces this regardless of workflow logic.
type CommissionRecord struct {
	id        uint
	revenueID uint
	ownerID   uint
	amount    decimal.Decimal
	createdAt time.Time
}

// NewCommissionRecord derives the payout record for an approved revenue.
func NewCommissionRecord(r *Revenue) (*CommissionRecord, error) {
	if r == nil {
		return nil, fmt.Errorf("revenue is required")
	}
	if r.ID() == 0 {
		return nil, fmt.Errorf("revenue ID is required")
	}
	if !r.Status().IsApproved() {
		return nil, fmt.Errorf("commission can only be derived from an approved revenue")
	}

	return &CommissionRecord{
		revenueID: r.ID(),
		ownerID:   r.OwnerID(),
		amount:    r.CommissionAmount(),
		createdAt: time.Now(),
	}, nil
}

func ReconstructCommissionRecord(
	id uint,
	revenueID uint,
	ownerID uint,
	amount decimal.Decimal,
	createdAt time.Time,
) (*CommissionRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("commission record ID cannot be zero")
	}
	if revenueID == 0 {
		return nil, fmt.Errorf("revenue ID is required")
	}

	return &CommissionRecord{
		id:        id,
		revenueID: revenueID,
		ownerID:   ownerID,
		amount:    amount,
		createdAt: createdAt,
	}, nil
}

func (c *CommissionRecord) ID() uint {
	return c.id
}

func (c *CommissionRecord) RevenueID() uint {
	return c.revenueID
}

func (c *CommissionRecord) OwnerID() uint {
	return c.ownerID
}

func (c *CommissionRecord) Amount() decimal.Decimal {
	return c.amount
}

func (c *CommissionRecord) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CommissionRecord) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("commission record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("commission record ID cannot be zero")
	}
	c.id = id
	return nil
}
