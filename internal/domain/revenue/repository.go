package revenue

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filter narrows revenue listings.
type Filter struct {
	OwnerID  *uint
	Status   *string
	Customer *string
	Page     int
	PageSize int
}

// Repository persists revenues.
type Repository interface {
	Create(ctx context.Context, r *Revenue) error
	GetByID(ctx context.Context, id uint) (*Revenue, error)
	Update(ctx context.Context, r *Revenue) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Revenue, int64, error)
	// SumAmountByStatus totals the amount of revenues in the given status,
	// optionally bounded by creation time.
	SumAmountByStatus(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error)
}

// CommissionRepository persists derived commission records.
type CommissionRepository interface {
	// Create inserts the record. Returns ErrDuplicateCommission when a record
	// for the same revenue already exists.
	Create(ctx context.Context, c *CommissionRecord) error
	GetByRevenueID(ctx context.Context, revenueID uint) (*CommissionRecord, error)
	ListByOwnerID(ctx context.Context, ownerID uint, limit, offset int) ([]*CommissionRecord, int64, error)
}
