package revenue

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "accountsforge/internal/domain/revenue/valueobjects"
)

// Revenue is a salesman-recorded income record. Approval produces exactly
// one commission record computed from the rate fixed at creation.
type Revenue struct {
	id             uint
	ownerID        uint
	amount         decimal.Decimal
	customer       string
	invoiceNumber  string
	commissionRate vo.CommissionRate
	status         vo.RevenueStatus
	reviewerID     *uint
	reviewedAt     *time.Time
	adminNote      string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRevenue(
	ownerID uint,
	amount decimal.Decimal,
	customer string,
	invoiceNumber string,
	commissionRate vo.CommissionRate,
) (*Revenue, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if len(customer) == 0 {
		return nil, fmt.Errorf("customer is required")
	}

	now := time.Now()
	return &Revenue{
		ownerID:        ownerID,
		amount:         amount,
		customer:       customer,
		invoiceNumber:  invoiceNumber,
		commissionRate: commissionRate,
		status:         vo.StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRevenue(
	id uint,
	ownerID uint,
	amount decimal.Decimal,
	customer string,
	invoiceNumber string,
	commissionRate vo.CommissionRate,
	status vo.RevenueStatus,
	reviewerID *uint,
	reviewedAt *time.Time,
	adminNote string,
	createdAt, updatedAt time.Time,
) (*Revenue, error) {
	if id == 0 {
		return nil, fmt.Errorf("revenue ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Revenue{
		id:             id,
		ownerID:        ownerID,
		amount:         amount,
		customer:       customer,
		invoiceNumber:  invoiceNumber,
		commissionRate: commissionRate,
		status:         status,
		reviewerID:     reviewerID,
		reviewedAt:     reviewedAt,
		adminNote:      adminNote,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Revenue) ID() uint {
	return r.id
}

func (r *Revenue) OwnerID() uint {
	return r.ownerID
}

func (r *Revenue) Amount() decimal.Decimal {
	return r.amount
}

func (r *Revenue) Customer() string {
	return r.customer
}

func (r *Revenue) InvoiceNumber() string {
	return r.invoiceNumber
}

func (r *Revenue) CommissionRate() vo.CommissionRate {
	return r.commissionRate
}

func (r *Revenue) Status() vo.RevenueStatus {
	return r.status
}

func (r *Revenue) ReviewerID() *uint {
	return r.reviewerID
}

func (r *Revenue) ReviewedAt() *time.Time {
	return r.reviewedAt
}

func (r *Revenue) AdminNote() string {
	return r.adminNote
}

func (r *Revenue) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Revenue) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Revenue) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("revenue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("revenue ID cannot be zero")
	}
	r.id = id
	return nil
}

// UpdateDetails changes the mutable fields. Legal only while pending.
func (r *Revenue) UpdateDetails(amount decimal.Decimal, customer, invoiceNumber string, rate vo.CommissionRate) error {
	if !r.status.IsPending() {
		return ErrNotPending
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if len(customer) == 0 {
		return fmt.Errorf("customer is required")
	}

	r.amount = amount
	r.customer = customer
	r.invoiceNumber = invoiceNumber
	r.commissionRate = rate
	r.updatedAt = time.Now()
	return nil
}

// Approve transitions pending -> approved. Re-approving an already-approved
// revenue is a no-op; the commission uniqueness index is the backstop that
// guarantees at most one commission record either way.
func (r *Revenue) Approve(reviewerID uint, note string) error {
	if r.status.IsApproved() {
		return nil
	}
	if !r.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalTransition, r.status, vo.StatusApproved)
	}

	now := time.Now()
	r.status = vo.StatusApproved
	r.reviewerID = &reviewerID
	r.reviewedAt = &now
	r.adminNote = note
	r.updatedAt = now
	return nil
}

// Reject transitions pending -> rejected.
func (r *Revenue) Reject(reviewerID uint, reason string) error {
	if !r.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalTransition, r.status, vo.StatusRejected)
	}

	now := time.Now()
	r.status = vo.StatusRejected
	r.reviewerID = &reviewerID
	r.reviewedAt = &now
	r.adminNote = reason
	r.updatedAt = now
	return nil
}

// CommissionAmount is the payout computed from the amount and rate, rounded
// half-up to 2 decimal places.
func (r *Revenue) CommissionAmount() decimal.Decimal {
	return r.commissionRate.ApplyTo(r.amount)
}
