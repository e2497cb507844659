package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountsforge/internal/domain/claim"
	vo "accountsforge/internal/domain/claim/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
)

func TestDeleteClaimUseCase_OwnerWithdrawsPending(t *testing.T) {
	deleted := false
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
			return reconstructClaim(t, 5, employeeActor.ProfileID, vo.StatusPending), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}

	uc := NewDeleteClaimUseCase(claimRepo, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteClaimCommand{Actor: employeeActor, ClaimID: 5})

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteClaimUseCase_OwnerCannotWithdrawReviewed(t *testing.T) {
	deleted := false
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
			return reconstructClaim(t, 5, employeeActor.ProfileID, vo.StatusApproved), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}

	uc := NewDeleteClaimUseCase(claimRepo, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteClaimCommand{Actor: employeeActor, ClaimID: 5})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.False(t, deleted)
}

func TestDeleteClaimUseCase_NonOwnerForbidden(t *testing.T) {
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
			return reconstructClaim(t, 5, 42, vo.StatusPending), nil
		},
	}

	uc := NewDeleteClaimUseCase(claimRepo, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteClaimCommand{Actor: employeeActor, ClaimID: 5})

	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestDeleteClaimUseCase_AdminDeletesAnyStatus(t *testing.T) {
	for _, status := range []vo.ClaimStatus{vo.StatusPending, vo.StatusApproved, vo.StatusRejected, vo.StatusPaid} {
		t.Run(status.String(), func(t *testing.T) {
			deleted := false
			claimRepo := &mockClaimRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
					return reconstructClaim(t, 5, 42, status), nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			}

			uc := NewDeleteClaimUseCase(claimRepo, &mockLogger{})
			err := uc.Execute(context.Background(), DeleteClaimCommand{Actor: adminActor, ClaimID: 5})

			require.NoError(t, err)
			assert.True(t, deleted)
		})
	}
}

func TestDeleteClaimUseCase_NotFound(t *testing.T) {
	uc := NewDeleteClaimUseCase(&mockClaimRepository{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteClaimCommand{Actor: adminActor, ClaimID: 99})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
