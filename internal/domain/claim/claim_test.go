package claim

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "accountsforge/internal/domain/claim/valueobjects"
)

func newPendingClaim(t *testing.T) *Claim {
	t.Helper()
	c, err := NewClaim(3, decimal.NewFromInt(250), "reimbursement", "hotel stay", nil, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetID(1))
	return c
}

func TestNewClaim_RejectsDoubleReference(t *testing.T) {
	expenseID := uint(7)
	revenueID := uint(8)

	c, err := NewClaim(3, decimal.NewFromInt(100), "reimbursement", "", &expenseID, &revenueID)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "cannot reference both")
}

func TestNewClaim_SingleReferenceAllowed(t *testing.T) {
	expenseID := uint(7)
	c, err := NewClaim(3, decimal.NewFromInt(100), "reimbursement", "", &expenseID, nil)
	require.NoError(t, err)
	require.NotNil(t, c.ExpenseID())
	assert.Equal(t, expenseID, *c.ExpenseID())
	assert.Nil(t, c.RevenueID())
}

func TestClaim_ApproveThenPay(t *testing.T) {
	c := newPendingClaim(t)

	require.NoError(t, c.Approve(1, "ok"))
	assert.True(t, c.Status().IsApproved())

	err := c.MarkPaid("bank_transfer", "TXN-42")
	require.NoError(t, err)
	assert.True(t, c.Status().IsPaid())
	assert.Equal(t, "bank_transfer", c.PaymentMethod())
	assert.Equal(t, "TXN-42", c.PaymentReference())
	assert.NotNil(t, c.PaidAt())
}

func TestClaim_MarkPaid_RequiresApproval(t *testing.T) {
	c := newPendingClaim(t)

	err := c.MarkPaid("bank_transfer", "TXN-42")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.True(t, c.Status().IsPending())
	assert.Nil(t, c.PaidAt())
}

func TestClaim_MarkPaid_RequiresMethodAndReference(t *testing.T) {
	c := newPendingClaim(t)
	require.NoError(t, c.Approve(1, ""))

	err := c.MarkPaid("", "TXN-42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment method is required")

	err = c.MarkPaid("bank_transfer", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment reference is required")

	// Neither failed attempt moved the status.
	assert.True(t, c.Status().IsApproved())
}

func TestClaim_MarkPaid_PaidIsTerminal(t *testing.T) {
	c := newPendingClaim(t)
	require.NoError(t, c.Approve(1, ""))
	require.NoError(t, c.MarkPaid("bank_transfer", "TXN-42"))

	err := c.MarkPaid("cash", "TXN-43")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, "TXN-42", c.PaymentReference())
}

func TestClaim_Approve_IdempotentWhenApproved(t *testing.T) {
	c := newPendingClaim(t)
	require.NoError(t, c.Approve(1, "first"))

	require.NoError(t, c.Approve(9, "second"))
	assert.Equal(t, uint(1), *c.ReviewerID())
	assert.Equal(t, "first", c.AdminNote())
}

func TestClaim_Reject_RejectedCannotBePaid(t *testing.T) {
	c := newPendingClaim(t)
	require.NoError(t, c.Reject(1, "duplicate request"))

	err := c.MarkPaid("bank_transfer", "TXN-42")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestClaim_UpdateDetails_NotPending(t *testing.T) {
	c := newPendingClaim(t)
	require.NoError(t, c.Approve(1, ""))

	err := c.UpdateDetails(decimal.NewFromInt(300), "reimbursement", "")
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestClaimStatus_Transitions(t *testing.T) {
	assert.True(t, vo.StatusPending.CanTransitionTo(vo.StatusApproved))
	assert.True(t, vo.StatusPending.CanTransitionTo(vo.StatusRejected))
	assert.True(t, vo.StatusApproved.CanTransitionTo(vo.StatusPaid))
	assert.False(t, vo.StatusPending.CanTransitionTo(vo.StatusPaid))
	assert.False(t, vo.StatusApproved.CanTransitionTo(vo.StatusRejected))
	assert.False(t, vo.StatusPaid.CanTransitionTo(vo.StatusApproved))
	assert.True(t, vo.StatusPaid.IsTerminal())
	assert.True(t, vo.StatusRejected.IsTerminal())
	assert.False(t, vo.StatusApproved.IsTerminal())
}
