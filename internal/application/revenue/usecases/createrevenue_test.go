package usecases

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountsforge/internal/domain/authz"
	profilevo "accountsforge/internal/domain/profile/valueobjects"
	"accountsforge/internal/domain/revenue"
	vo "accountsforge/internal/domain/revenue/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
)

func TestCreateRevenueUseCase_Success(t *testing.T) {
	var created *revenue.Revenue
	revenueRepo := &mockRevenueRepository{
		CreateFunc: func(ctx context.Context, r *revenue.Revenue) error {
			created = r
			return r.SetID(11)
		},
	}

	uc := NewCreateRevenueUseCase(revenueRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateRevenueCommand{
		Actor:          salesmanActor,
		OwnerID:        salesmanActor.ProfileID,
		Amount:         decimal.NewFromInt(1000),
		Customer:       "Acme Corp",
		InvoiceNumber:  "INV-100",
		CommissionRate: decimal.NewFromInt(5),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, vo.StatusPending.String(), result.Revenue.Status)
	require.NotNil(t, created)
	assert.True(t, created.Status().IsPending())
}

func TestCreateRevenueUseCase_EmployeeForbidden(t *testing.T) {
	employee := authz.Actor{ProfileID: 3, AuthSubject: "auth|emp", Role: profilevo.RoleEmployee}

	uc := NewCreateRevenueUseCase(&mockRevenueRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateRevenueCommand{
		Actor:          employee,
		OwnerID:        employee.ProfileID,
		Amount:         decimal.NewFromInt(1000),
		Customer:       "Acme Corp",
		CommissionRate: decimal.NewFromInt(5),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestCreateRevenueUseCase_OwnerMismatchForbidden(t *testing.T) {
	uc := NewCreateRevenueUseCase(&mockRevenueRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateRevenueCommand{
		Actor:          salesmanActor,
		OwnerID:        99,
		Amount:         decimal.NewFromInt(1000),
		Customer:       "Acme Corp",
		CommissionRate: decimal.NewFromInt(5),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestCreateRevenueUseCase_RateValidation(t *testing.T) {
	tests := []struct {
		name string
		rate decimal.Decimal
	}{
		{name: "negative rate", rate: decimal.NewFromInt(-1)},
		{name: "rate above 100", rate: decimal.NewFromInt(101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateRevenueUseCase(&mockRevenueRepository{}, &mockLogger{})
			result, err := uc.Execute(context.Background(), CreateRevenueCommand{
				Actor:          salesmanActor,
				OwnerID:        salesmanActor.ProfileID,
				Amount:         decimal.NewFromInt(1000),
				Customer:       "Acme Corp",
				CommissionRate: tt.rate,
			})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
