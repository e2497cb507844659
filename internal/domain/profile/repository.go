package profile

import "context"

// Repository persists profiles.
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uint) (*Profile, error)
	GetByAuthSubject(ctx context.Context, subject string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	List(ctx context.Context, limit, offset int) ([]*Profile, int64, error)
	// RemoveDuplicates deletes surplus rows sharing an auth subject, keeping
	// the earliest-created row for each. Returns the number of rows removed.
	RemoveDuplicates(ctx context.Context) (int64, error)
}
