package notification

import "context"

// Repository persists notifications.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	Update(ctx context.Context, n *Notification) error
	ListByRecipientID(ctx context.Context, recipientID uint, unreadOnly bool, limit, offset int) ([]*Notification, int64, error)
	MarkAllRead(ctx context.Context, recipientID uint) (int64, error)
}
