package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/expense"
	vo "accountsforge/internal/domain/expense/valueobjects"
	"accountsforge/internal/domain/notification"
	profilevo "accountsforge/internal/domain/profile/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
)

var (
	adminActor    = authz.Actor{ProfileID: 1, AuthSubject: "auth|admin", Role: profilevo.RoleAdmin}
	employeeActor = authz.Actor{ProfileID: 3, AuthSubject: "auth|emp", Role: profilevo.RoleEmployee}
)

func reconstructExpense(t *testing.T, id, ownerID uint, status vo.ExpenseStatus) *expense.Expense {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	e, err := expense.ReconstructExpense(
		id, ownerID, decimal.NewFromInt(120), "travel", "client visit",
		status, nil, nil, "", now, now,
	)
	require.NoError(t, err)
	return e
}

func TestApproveExpenseUseCase_Success(t *testing.T) {
	pending := reconstructExpense(t, 1, 3, vo.StatusPending)

	var updated *expense.Expense
	var created *notification.Notification

	expenseRepo := &mockExpenseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*expense.Expense, error) {
			return pending, nil
		},
		UpdateFunc: func(ctx context.Context, e *expense.Expense) error {
			updated = e
			return nil
		},
	}
	notifRepo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			created = n
			return nil
		},
	}

	uc := NewApproveExpenseUseCase(expenseRepo, notifRepo, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveExpenseCommand{
		Actor:     adminActor,
		ExpenseID: 1,
		Note:      "looks fine",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, vo.StatusApproved.String(), result.Expense.Status)
	require.NotNil(t, updated)
	assert.True(t, updated.Status().IsApproved())
	require.NotNil(t, created)
	assert.Equal(t, uint(3), created.RecipientID())
	assert.Equal(t, notification.RelatedExpense, created.RelatedType())
}

func TestApproveExpenseUseCase_NonAdminForbidden(t *testing.T) {
	getCalled := false
	expenseRepo := &mockExpenseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*expense.Expense, error) {
			getCalled = true
			return reconstructExpense(t, 1, 3, vo.StatusPending), nil
		},
	}

	uc := NewApproveExpenseUseCase(expenseRepo, &mockNotificationRepository{}, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveExpenseCommand{
		Actor:     employeeActor,
		ExpenseID: 1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.False(t, getCalled, "forbidden requests must not reach the repository")
}

func TestApproveExpenseUseCase_IdempotentWhenApproved(t *testing.T) {
	updateCalled := false
	notifyCalled := false

	expenseRepo := &mockExpenseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*expense.Expense, error) {
			return reconstructExpense(t, 1, 3, vo.StatusApproved), nil
		},
		UpdateFunc: func(ctx context.Context, e *expense.Expense) error {
			updateCalled = true
			return nil
		},
	}
	notifRepo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			notifyCalled = true
			return nil
		},
	}

	uc := NewApproveExpenseUseCase(expenseRepo, notifRepo, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveExpenseCommand{
		Actor:     adminActor,
		ExpenseID: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, vo.StatusApproved.String(), result.Expense.Status)
	assert.False(t, updateCalled, "re-approval must write nothing")
	assert.False(t, notifyCalled, "re-approval must not emit a notification")
}

func TestApproveExpenseUseCase_RejectedIsWorkflowViolation(t *testing.T) {
	expenseRepo := &mockExpenseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*expense.Expense, error) {
			return reconstructExpense(t, 1, 3, vo.StatusRejected), nil
		},
	}

	uc := NewApproveExpenseUseCase(expenseRepo, &mockNotificationRepository{}, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveExpenseCommand{
		Actor:     adminActor,
		ExpenseID: 1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsWorkflowViolationError(err))
}

func TestApproveExpenseUseCase_NotFound(t *testing.T) {
	expenseRepo := &mockExpenseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*expense.Expense, error) {
			return nil, expense.ErrNotFound
		},
	}

	uc := NewApproveExpenseUseCase(expenseRepo, &mockNotificationRepository{}, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), ApproveExpenseCommand{
		Actor:     adminActor,
		ExpenseID: 99,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
