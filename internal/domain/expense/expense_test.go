package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "accountsforge/internal/domain/expense/valueobjects"
)

func newPendingExpense(t *testing.T) *Expense {
	t.Helper()
	e, err := NewExpense(3, decimal.NewFromInt(120), "travel", "client visit")
	require.NoError(t, err)
	require.NoError(t, e.SetID(1))
	return e
}

func TestNewExpense_Validation(t *testing.T) {
	tests := []struct {
		name          string
		ownerID       uint
		amount        decimal.Decimal
		category      string
		expectedError string
	}{
		{
			name:          "zero owner",
			ownerID:       0,
			amount:        decimal.NewFromInt(10),
			category:      "travel",
			expectedError: "owner ID is required",
		},
		{
			name:          "zero amount",
			ownerID:       3,
			amount:        decimal.Zero,
			category:      "travel",
			expectedError: "amount must be positive",
		},
		{
			name:          "negative amount",
			ownerID:       3,
			amount:        decimal.NewFromInt(-5),
			category:      "travel",
			expectedError: "amount must be positive",
		},
		{
			name:          "missing category",
			ownerID:       3,
			amount:        decimal.NewFromInt(10),
			category:      "",
			expectedError: "category is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewExpense(tt.ownerID, tt.amount, tt.category, "")
			require.Error(t, err)
			assert.Nil(t, e)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestExpense_Approve(t *testing.T) {
	e := newPendingExpense(t)

	err := e.Approve(1, "looks fine")
	require.NoError(t, err)
	assert.True(t, e.Status().IsApproved())
	require.NotNil(t, e.ReviewerID())
	assert.Equal(t, uint(1), *e.ReviewerID())
	assert.NotNil(t, e.ReviewedAt())
	assert.Equal(t, "looks fine", e.AdminNote())
}

func TestExpense_Approve_IdempotentWhenApproved(t *testing.T) {
	e := newPendingExpense(t)
	require.NoError(t, e.Approve(1, "first"))
	reviewedAt := *e.ReviewedAt()

	err := e.Approve(9, "second")
	require.NoError(t, err)

	// The first approval stands untouched.
	assert.Equal(t, uint(1), *e.ReviewerID())
	assert.Equal(t, reviewedAt, *e.ReviewedAt())
	assert.Equal(t, "first", e.AdminNote())
}

func TestExpense_Approve_RejectedIsTerminal(t *testing.T) {
	e := newPendingExpense(t)
	require.NoError(t, e.Reject(1, "no receipt"))

	err := e.Approve(1, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.True(t, e.Status().IsRejected())
}

func TestExpense_Reject_ApprovedIsTerminal(t *testing.T) {
	e := newPendingExpense(t)
	require.NoError(t, e.Approve(1, ""))

	err := e.Reject(1, "changed my mind")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.True(t, e.Status().IsApproved())
}

func TestExpense_UpdateDetails(t *testing.T) {
	e := newPendingExpense(t)

	err := e.UpdateDetails(decimal.NewFromInt(80), "meals", "team lunch")
	require.NoError(t, err)
	assert.True(t, e.Amount().Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "meals", e.Category())
}

func TestExpense_UpdateDetails_NotPending(t *testing.T) {
	e := newPendingExpense(t)
	require.NoError(t, e.Approve(1, ""))

	err := e.UpdateDetails(decimal.NewFromInt(80), "meals", "")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestExpenseStatus_Transitions(t *testing.T) {
	assert.True(t, vo.StatusPending.CanTransitionTo(vo.StatusApproved))
	assert.True(t, vo.StatusPending.CanTransitionTo(vo.StatusRejected))
	assert.False(t, vo.StatusApproved.CanTransitionTo(vo.StatusRejected))
	assert.False(t, vo.StatusRejected.CanTransitionTo(vo.StatusApproved))
	assert.True(t, vo.StatusApproved.IsTerminal())
	assert.True(t, vo.StatusRejected.IsTerminal())
	assert.False(t, vo.StatusPending.IsTerminal())
}
