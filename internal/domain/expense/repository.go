package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filter narrows expense listings.
type Filter struct {
	OwnerID  *uint
	Status   *string
	Category *string
	Page     int
	PageSize int
}

// Repository persists expenses.
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id uint) (*Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Expense, int64, error)
	// SumAmountByStatus totals the amount of expenses in the given status,
	// optionally bounded by creation time.
	SumAmountByStatus(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error)
}
