package claim

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "accountsforge/internal/domain/claim/valueobjects"
)

// Claim is a payout request, optionally linked to the expense or revenue
// it originates from. Payment is a separate explicit transition after
// approval; the payment method and reference are set atomically with it.
type Claim struct {
	id               uint
	ownerID          uint
	amount           decimal.Decimal
	claimType        string
	description      string
	expenseID        *uint
	revenueID        *uint
	status           vo.ClaimStatus
	reviewerID       *uint
	reviewedAt       *time.Time
	adminNote        string
	paymentMethod    string
	paymentReference string
	paidAt           *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewClaim(ownerID uint, amount decimal.Decimal, claimType, description string, expenseID, revenueID *uint) (*Claim, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if len(claimType) == 0 {
		return nil, fmt.Errorf("claim type is required")
	}
	if len(description) > 2000 {
		return nil, fmt.Errorf("description exceeds maximum length of 2000 characters")
	}
	if expenseID != nil && revenueID != nil {
		return nil, fmt.Errorf("claim cannot reference both an expense and a revenue")
	}

	now := time.Now()
	return &Claim{
		ownerID:     ownerID,
		amount:      amount,
		claimType:   claimType,
		description: description,
		expenseID:   expenseID,
		revenueID:   revenueID,
		status:      vo.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructClaim(
	id uint,
	ownerID uint,
	amount decimal.Decimal,
	claimType string,
	description string,
	expenseID *uint,
	revenueID *uint,
	status vo.ClaimStatus,
	reviewerID *uint,
	reviewedAt *time.Time,
	adminNote string,
	paymentMethod string,
	paymentReference string,
	paidAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Claim, error) {
	if id == 0 {
		return nil, fmt.Errorf("claim ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Claim{
		id:               id,
		ownerID:          ownerID,
		amount:           amount,
		claimType:        claimType,
		description:      description,
		expenseID:        expenseID,
		revenueID:        revenueID,
		status:           status,
		reviewerID:       reviewerID,
		reviewedAt:       reviewedAt,
		adminNote:        adminNote,
		paymentMethod:    paymentMethod,
		paymentReference: paymentReference,
		paidAt:           paidAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Claim) ID() uint {
	return c.id
}

func (c *Claim) OwnerID() uint {
	return c.ownerID
}

func (c *Claim) Amount() decimal.Decimal {
	return c.amount
}

func (c *Claim) ClaimType() string {
	return c.claimType
}

func (c *Claim) Description() string {
	return c.description
}

func (c *Claim) ExpenseID() *uint {
	return c.expenseID
}

func (c *Claim) RevenueID() *uint {
	return c.revenueID
}

func (c *Claim) Status() vo.ClaimStatus {
	return c.status
}

func (c *Claim) ReviewerID() *uint {
	return c.reviewerID
}

func (c *Claim) ReviewedAt() *time.Time {
	return c.reviewedAt
}

func (c *Claim) AdminNote() string {
	return c.adminNote
}

func (c *Claim) PaymentMethod() string {
	return c.paymentMethod
}

func (c *Claim) PaymentReference() string {
	return c.paymentReference
}

func (c *Claim) PaidAt() *time.Time {
	return c.paidAt
}

func (c *Claim) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Claim) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Claim) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("claim ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("claim ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateDetails changes the mutable fields. Legal only while pending.
func (c *Claim) UpdateDetails(amount decimal.Decimal, claimType, description string) error {
	if !c.status.IsPending() {
		return ErrNotPending
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if len(claimType) == 0 {
		return fmt.Errorf("claim type is required")
	}
	if len(description) > 2000 {
		return fmt.Errorf("description exceeds maximum length of 2000 characters")
	}

	c.amount = amount
	c.claimType = claimType
	c.description = description
	c.updatedAt = time.Now()
	return nil
}

// Approve transitions pending -> approved. Idempotent for already-approved
// claims. No side effect beyond the status change; payment is separate.
func (c *Claim) Approve(reviewerID uint, note string) error {
	if c.status.IsApproved() {
		return nil
	}
	if !c.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalTransition, c.status, vo.StatusApproved)
	}

	now := time.Now()
	c.status = vo.StatusApproved
	c.reviewerID = &reviewerID
	c.reviewedAt = &now
	c.adminNote = note
	c.updatedAt = now
	return nil
}

// Reject transitions pending -> rejected.
func (c *Claim) Reject(reviewerID uint, reason string) error {
	if !c.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalTransition, c.status, vo.StatusRejected)
	}

	now := time.Now()
	c.status = vo.StatusRejected
	c.reviewerID = &reviewerID
	c.reviewedAt = &now
	c.adminNote = reason
	c.updatedAt = now
	return nil
}

// MarkPaid transitions approved -> paid. The payment method and reference
// must be supplied together with the transition.
func (c *Claim) MarkPaid(method, reference string) error {
	if len(method) == 0 {
		return fmt.Errorf("payment method is required")
	}
	if len(reference) == 0 {
		return fmt.Errorf("payment reference is required")
	}
	if !c.status.CanTransitionTo(vo.StatusPaid) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalTransition, c.status, vo.StatusPaid)
	}

	now := time.Now()
	c.status = vo.StatusPaid
	c.paymentMethod = method
	c.paymentReference = reference
	c.paidAt = &now
	c.updatedAt = now
	return nil
}
