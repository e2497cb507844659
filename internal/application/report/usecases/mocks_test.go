package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"accountsforge/internal/domain/expense"
	"accountsforge/internal/domain/revenue"
	"accountsforge/internal/shared/logger"
)

type mockExpenseRepository struct {
	SumAmountByStatusFunc func(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error)
}

func (m *mockExpenseRepository) Create(ctx context.Context, e *expense.Expense) error  { return nil }
func (m *mockExpenseRepository) Update(ctx context.Context, e *expense.Expense) error  { return nil }
func (m *mockExpenseRepository) Delete(ctx context.Context, id uint) error             { return nil }
func (m *mockExpenseRepository) GetByID(ctx context.Context, id uint) (*expense.Expense, error) {
	return nil, expense.ErrNotFound
}

func (m *mockExpenseRepository) List(ctx context.Context, filter expense.Filter) ([]*expense.Expense, int64, error) {
	return nil, 0, nil
}

func (m *mockExpenseRepository) SumAmountByStatus(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
	if m.SumAmountByStatusFunc != nil {
		return m.SumAmountByStatusFunc(ctx, status, from, to)
	}
	return decimal.Zero, nil
}

type mockRevenueRepository struct {
	SumAmountByStatusFunc func(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error)
}

func (m *mockRevenueRepository) Create(ctx context.Context, r *revenue.Revenue) error { return nil }
func (m *mockRevenueRepository) Update(ctx context.Context, r *revenue.Revenue) error { return nil }
func (m *mockRevenueRepository) Delete(ctx context.Context, id uint) error            { return nil }
func (m *mockRevenueRepository) GetByID(ctx context.Context, id uint) (*revenue.Revenue, error) {
	return nil, revenue.ErrNotFound
}

func (m *mockRevenueRepository) List(ctx context.Context, filter revenue.Filter) ([]*revenue.Revenue, int64, error) {
	return nil, 0, nil
}

func (m *mockRevenueRepository) SumAmountByStatus(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
	if m.SumAmountByStatusFunc != nil {
		return m.SumAmountByStatusFunc(ctx, status, from, to)
	}
	return decimal.Zero, nil
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
