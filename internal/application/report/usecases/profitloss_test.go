package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountsforge/internal/domain/authz"
	expensevo "accountsforge/internal/domain/expense/valueobjects"
	profilevo "accountsforge/internal/domain/profile/valueobjects"
	revenuevo "accountsforge/internal/domain/revenue/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
)

var adminActor = authz.Actor{ProfileID: 1, AuthSubject: "auth|admin", Role: profilevo.RoleAdmin}

func TestProfitLossUseCase_ComputesNet(t *testing.T) {
	var revenueStatus, expenseStatus string

	revenueRepo := &mockRevenueRepository{
		SumAmountByStatusFunc: func(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
			revenueStatus = status
			return decimal.RequireFromString("1234567.89"), nil
		},
	}
	expenseRepo := &mockExpenseRepository{
		SumAmountByStatusFunc: func(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
			expenseStatus = status
			return decimal.RequireFromString("234567.89"), nil
		},
	}

	uc := NewProfitLossUseCase(expenseRepo, revenueRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ProfitLossQuery{Actor: adminActor})

	require.NoError(t, err)
	assert.Equal(t, "1234567.89", result.TotalRevenue)
	assert.Equal(t, "234567.89", result.TotalExpense)
	assert.Equal(t, "1000000.00", result.NetProfit)
	assert.Equal(t, "1,234,567.89", result.FormattedRevenue)
	assert.Equal(t, "1,000,000.00", result.FormattedNet)

	// Only approved records count toward the report.
	assert.Equal(t, revenuevo.StatusApproved.String(), revenueStatus)
	assert.Equal(t, expensevo.StatusApproved.String(), expenseStatus)
}

func TestProfitLossUseCase_NegativeNet(t *testing.T) {
	revenueRepo := &mockRevenueRepository{
		SumAmountByStatusFunc: func(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(100), nil
		},
	}
	expenseRepo := &mockExpenseRepository{
		SumAmountByStatusFunc: func(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
			return decimal.NewFromInt(250), nil
		},
	}

	uc := NewProfitLossUseCase(expenseRepo, revenueRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ProfitLossQuery{Actor: adminActor})

	require.NoError(t, err)
	assert.Equal(t, "-150.00", result.NetProfit)
}

func TestProfitLossUseCase_NonAdminForbidden(t *testing.T) {
	employee := authz.Actor{ProfileID: 3, AuthSubject: "auth|emp", Role: profilevo.RoleEmployee}

	uc := NewProfitLossUseCase(&mockExpenseRepository{}, &mockRevenueRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ProfitLossQuery{Actor: employee})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestProfitLossUseCase_PeriodOrderValidated(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-24 * time.Hour)

	uc := NewProfitLossUseCase(&mockExpenseRepository{}, &mockRevenueRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ProfitLossQuery{
		Actor: adminActor,
		From:  &from,
		To:    &to,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
