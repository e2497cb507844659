package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"accountsforge/internal/application/notifier"
	"accountsforge/internal/domain/claim"
	"accountsforge/internal/domain/notification"
	"accountsforge/internal/shared/db"
	"accountsforge/internal/shared/logger"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

func newTestMailer() *notifier.Mailer {
	// nil sender disables email delivery entirely.
	return notifier.NewMailer(nil, nil, nil, &mockLogger{})
}

type mockClaimRepository struct {
	CreateFunc  func(ctx context.Context, c *claim.Claim) error
	GetByIDFunc func(ctx context.Context, id uint) (*claim.Claim, error)
	UpdateFunc  func(ctx context.Context, c *claim.Claim) error
	DeleteFunc  func(ctx context.Context, id uint) error
	ListFunc    func(ctx context.Context, filter claim.Filter) ([]*claim.Claim, int64, error)
}

func (m *mockClaimRepository) Create(ctx context.Context, c *claim.Claim) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) GetByID(ctx context.Context, id uint) (*claim.Claim, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, claim.ErrNotFound
}

func (m *mockClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockClaimRepository) List(ctx context.Context, filter claim.Filter) ([]*claim.Claim, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockNotificationRepository struct {
	CreateFunc            func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc           func(ctx context.Context, id uint) (*notification.Notification, error)
	UpdateFunc            func(ctx context.Context, n *notification.Notification) error
	ListByRecipientIDFunc func(ctx context.Context, recipientID uint, unreadOnly bool, limit, offset int) ([]*notification.Notification, int64, error)
	MarkAllReadFunc       func(ctx context.Context, recipientID uint) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, notification.ErrNotFound
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) ListByRecipientID(ctx context.Context, recipientID uint, unreadOnly bool, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListByRecipientIDFunc != nil {
		return m.ListByRecipientIDFunc(ctx, recipientID, unreadOnly, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, recipientID)
	}
	return 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
