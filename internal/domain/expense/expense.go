package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "accountsforge/internal/domain/expense/valueobjects"
)

// Expense is an employee-submitted cost record. The owner is fixed at
// creation; the owner may edit details only while the expense is pending,
// and only an admin moves it through the approval workflow.
type Expense struct {
	id          uint
	ownerID     uint
	amount      decimal.Decimal
	category    string
	description string
	status      vo.ExpenseStatus
	reviewerID  *uint
	reviewedAt  *time.Time
	adminNote   string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewExpense(ownerID uint, amount decimal.Decimal, category, description string) (*Expense, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if len(category) == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if len(description) > 2000 {
		return nil, fmt.Errorf("description exceeds maximum length of 2000 characters")
	}

	now := time.Now()
	return &Expense{
		ownerID:     ownerID,
		amount:      amount,
		category:    category,
		description: description,
		status:      vo.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructExpense(
	id uint,
	ownerID uint,
	amount decimal.Decimal,
	category string,
	description string,
	status vo.ExpenseStatus,
	reviewerID *uint,
	reviewedAt *time.Time,
	adminNote string,
	createdAt, updatedAt time.Time,
) (*Expense, error) {
	if id == 0 {
		return nil, fmt.Errorf("expense ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Expense{
		id:          id,
		ownerID:     ownerID,
		amount:      amount,
		category:    category,
		description: description,
		status:      status,
		reviewerID:  reviewerID,
		reviewedAt:  reviewedAt,
		adminNote:   adminNote,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e *Expense) ID() uint {
	return e.id
}

func (e *Expense) OwnerID() uint {
	return e.ownerID
}

func (e *Expense) Amount() decimal.Decimal {
	return e.amount
}

func (e *Expense) Category() string {
	return e.category
}

func (e *Expense) Description() string {
	return e.description
}

func (e *Expense) Status() vo.ExpenseStatus {
	return e.status
}

func (e *Expense) ReviewerID() *uint {
	return e.reviewerID
}

func (e *Expense) ReviewedAt() *time.Time {
	return e.reviewedAt
}

func (e *Expense) AdminNote() string {
	return e.adminNote
}

func (e *Expense) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Expense) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Expense) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("expense ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("expense ID cannot be zero")
	}
	e.id = id
	return nil
}

// UpdateDetails changes the mutable fields. Legal only while pending; the
// owner check happens in the authorization engine before this is called.
func (e *Expense) UpdateDetails(amount decimal.Decimal, category, description string) error {
	if !e.status.IsPending() {
		return ErrNotPending
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	if len(category) == 0 {
		return fmt.Errorf("category is required")
	}
	if len(description) > 2000 {
		return fmt.Errorf("description exceeds maximum length of 2000 characters")
	}

	e.amount = amount
	e.category = category
	e.description = description
	e.updatedAt = time.Now()
	return nil
}

// Approve transitions pending -> approved. Re-approving an already-approved
// expense is a no-op so retried requests stay idempotent.
func (e *Expense) Approve(reviewerID uint, note string) error {
	if e.status.IsApproved() {
		return nil
	}
	if !e.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalTransition, e.status, vo.StatusApproved)
	}

	now := time.Now()
	e.status = vo.StatusApproved
	e.reviewerID = &reviewerID
	e.reviewedAt = &now
	e.adminNote = note
	e.updatedAt = now
	return nil
}

// Reject transitions pending -> rejected.
func (e *Expense) Reject(reviewerID uint, reason string) error {
	if !e.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrIllegalTransition, e.status, vo.StatusRejected)
	}

	now := time.Now()
	e.status = vo.StatusRejected
	e.reviewerID = &reviewerID
	e.reviewedAt = &now
	e.adminNote = reason
	e.updatedAt = now
	return nil
}
