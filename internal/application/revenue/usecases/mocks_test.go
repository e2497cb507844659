package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"accountsforge/internal/application/notifier"
	"accountsforge/internal/domain/notification"
	"accountsforge/internal/domain/revenue"
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

type mockRevenueRepository struct {
	CreateFunc            func(ctx context.Context, r *revenue.Revenue) error
	GetByIDFunc           func(ctx context.Context, id uint) (*revenue.Revenue, error)
	UpdateFunc            func(ctx context.Context, r *revenue.Revenue) error
	DeleteFunc            func(ctx context.Context, id uint) error
	ListFunc              func(ctx context.Context, filter revenue.Filter) ([]*revenue.Revenue, int64, error)
	SumAmountByStatusFunc func(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error)
}

func (m *mockRevenueRepository) Create(ctx context.Context, r *revenue.Revenue) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRevenueRepository) GetByID(ctx context.Context, id uint) (*revenue.Revenue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, revenue.ErrNotFound
}

func (m *mockRevenueRepository) Update(ctx context.Context, r *revenue.Revenue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRevenueRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRevenueRepository) List(ctx context.Context, filter revenue.Filter) ([]*revenue.Revenue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRevenueRepository) SumAmountByStatus(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
	if m.SumAmountByStatusFunc != nil {
		return m.SumAmountByStatusFunc(ctx, status, from, to)
	}
	return decimal.Zero, nil
}

type mockCommissionRepository struct {
	CreateFunc         func(ctx context.Context, c *revenue.CommissionRecord) error
	GetByRevenueIDFunc func(ctx context.Context, revenueID uint) (*revenue.CommissionRecord, error)
	ListByOwnerIDFunc  func(ctx context.Context, ownerID uint, limit, offset int) ([]*revenue.CommissionRecord, int64, error)
}

func (m *mockCommissionRepository) Create(ctx context.Context, c *revenue.CommissionRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommissionRepository) GetByRevenueID(ctx context.Context, revenueID uint) (*revenue.CommissionRecord, error) {
	if m.GetByRevenueIDFunc != nil {
		return m.GetByRevenueIDFunc(ctx, revenueID)
	}
	return nil, revenue.ErrCommissionNotFound
}

func (m *mockCommissionRepository) ListByOwnerID(ctx context.Context, ownerID uint, limit, offset int) ([]*revenue.CommissionRecord, int64, error) {
	if m.ListByOwnerIDFunc != nil {
		return m.ListByOwnerIDFunc(ctx, ownerID, limit, offset)
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
