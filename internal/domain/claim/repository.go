package claim

import "context"

// Filter narrows claim listings.
type Filter struct {
	OwnerID   *uint
	Status    *string
	ClaimType *string
	Page      int
	PageSize  int
}

// Repository persists claims.
type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uint) (*Claim, error)
	Update(ctx context.Context, c *Claim) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter Filter) ([]*Claim, int64, error)
}
