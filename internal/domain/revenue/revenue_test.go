package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "accountsforge/internal/domain/revenue/valueobjects"
)

func mustRate(t *testing.T, s string) vo.CommissionRate {
	t.Helper()
	rate, err := vo.NewCommissionRate(decimal.RequireFromString(s))
	require.NoError(t, err)
	return rate
}

func newPendingRevenue(t *testing.T, amount, rate string) *Revenue {
	t.Helper()
	r, err := NewRevenue(2, decimal.RequireFromString(amount), "Acme Corp", "INV-100", mustRate(t, rate))
	require.NoError(t, err)
	require.NoError(t, r.SetID(1))
	return r
}

func TestCommissionRate_Bounds(t *testing.T) {
	_, err := vo.NewCommissionRate(decimal.NewFromInt(-1))
	assert.Error(t, err)

	_, err = vo.NewCommissionRate(decimal.NewFromInt(101))
	assert.Error(t, err)

	_, err = vo.NewCommissionRate(decimal.Zero)
	assert.NoError(t, err)

	_, err = vo.NewCommissionRate(decimal.NewFromInt(100))
	assert.NoError(t, err)
}

func TestCommissionAmount_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		rate     string
		expected string
	}{
		{name: "exact", amount: "1000", rate: "5", expected: "50.00"},
		{name: "half-up rounding", amount: "33.33", rate: "5", expected: "1.67"},
		{name: "ten percent", amount: "2000", rate: "10", expected: "200.00"},
		{name: "zero rate", amount: "500", rate: "0", expected: "0.00"},
		{name: "fractional rate", amount: "999.99", rate: "2.5", expected: "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPendingRevenue(t, tt.amount, tt.rate)
			assert.Equal(t, tt.expected, r.CommissionAmount().StringFixed(2))
		})
	}
}

func TestRevenue_Approve(t *testing.T) {
	r := newPendingRevenue(t, "1000", "5")

	err := r.Approve(1, "verified invoice")
	require.NoError(t, err)
	assert.True(t, r.Status().IsApproved())
	require.NotNil(t, r.ReviewerID())
	assert.Equal(t, uint(1), *r.ReviewerID())
}

func TestRevenue_Approve_IdempotentWhenApproved(t *testing.T) {
	r := newPendingRevenue(t, "1000", "5")
	require.NoError(t, r.Approve(1, "first"))

	err := r.Approve(9, "second")
	require.NoError(t, err)
	assert.Equal(t, uint(1), *r.ReviewerID())
	assert.Equal(t, "first", r.AdminNote())
}

func TestRevenue_TerminalStatuses(t *testing.T) {
	rejected := newPendingRevenue(t, "1000", "5")
	require.NoError(t, rejected.Reject(1, "wrong invoice"))
	assert.ErrorIs(t, rejected.Approve(1, ""), ErrIllegalTransition)

	approved := newPendingRevenue(t, "1000", "5")
	require.NoError(t, approved.Approve(1, ""))
	assert.ErrorIs(t, approved.Reject(1, ""), ErrIllegalTransition)
}

func TestNewCommissionRecord(t *testing.T) {
	r := newPendingRevenue(t, "33.33", "5")
	require.NoError(t, r.Approve(1, ""))

	c, err := NewCommissionRecord(r)
	require.NoError(t, err)
	assert.Equal(t, r.ID(), c.RevenueID())
	assert.Equal(t, r.OwnerID(), c.OwnerID())
	assert.Equal(t, "1.67", c.Amount().StringFixed(2))
}

func TestNewCommissionRecord_RequiresApprovedRevenue(t *testing.T) {
	r := newPendingRevenue(t, "1000", "5")

	c, err := NewCommissionRecord(r)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "approved")
}

func TestNewCommissionRecord_RequiresPersistedRevenue(t *testing.T) {
	r, err := NewRevenue(2, decimal.NewFromInt(1000), "Acme Corp", "INV-100", mustRate(t, "5"))
	require.NoError(t, err)
	require.NoError(t, r.Approve(1, ""))

	c, err := NewCommissionRecord(r)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "revenue ID is required")
}
