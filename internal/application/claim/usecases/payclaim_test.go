package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/claim"
	vo "accountsforge/internal/domain/claim/valueobjects"
	"accountsforge/internal/domain/notification"
	profilevo "accountsforge/internal/domain/profile/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
)

var (
	adminActor    = authz.Actor{ProfileID: 1, AuthSubject: "auth|admin", Role: profilevo.RoleAdmin}
	employeeActor = authz.Actor{ProfileID: 3, AuthSubject: "auth|emp", Role: profilevo.RoleEmployee}
)

func reconstructClaim(t *testing.T, id, ownerID uint, status vo.ClaimStatus) *claim.Claim {
	t.Helper()
	now := time.Now().Add(-time.Hour)
	c, err := claim.ReconstructClaim(
		id, ownerID, decimal.NewFromInt(300), "reimbursement", "conference travel",
		nil, nil, status, nil, nil, "", "", "", nil, now, now,
	)
	require.NoError(t, err)
	return c
}

func TestPayClaimUseCase_Success(t *testing.T) {
	approved := reconstructClaim(t, 5, 3, vo.StatusApproved)

	var updated *claim.Claim
	var notif *notification.Notification
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
			return approved, nil
		},
		UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
			updated = c
			return nil
		},
	}
	notificationRepo := &mockNotificationRepository{
		CreateFunc: func(ctx context.Context, n *notification.Notification) error {
			notif = n
			return nil
		},
	}

	uc := NewPayClaimUseCase(claimRepo, notificationRepo, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), PayClaimCommand{
		Actor:            adminActor,
		ClaimID:          5,
		PaymentMethod:    "bank_transfer",
		PaymentReference: "TXN-42",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Status().IsPaid())
	assert.Equal(t, "bank_transfer", result.Claim.PaymentMethod)
	assert.Equal(t, "TXN-42", result.Claim.PaymentReference)
	require.NotNil(t, result.Claim.PaidAt)

	require.NotNil(t, notif)
	assert.Equal(t, uint(3), notif.RecipientID())
	assert.True(t, strings.Contains(notif.Content(), "TXN-42"))
}

func TestPayClaimUseCase_NonAdminForbidden(t *testing.T) {
	getCalled := false
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
			getCalled = true
			return reconstructClaim(t, 5, 3, vo.StatusApproved), nil
		},
	}

	uc := NewPayClaimUseCase(claimRepo, &mockNotificationRepository{}, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), PayClaimCommand{
		Actor:            employeeActor,
		ClaimID:          5,
		PaymentMethod:    "bank_transfer",
		PaymentReference: "TXN-42",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.False(t, getCalled)
}

func TestPayClaimUseCase_PendingClaimNotPayable(t *testing.T) {
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
			return reconstructClaim(t, 5, 3, vo.StatusPending), nil
		},
	}

	uc := NewPayClaimUseCase(claimRepo, &mockNotificationRepository{}, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), PayClaimCommand{
		Actor:            adminActor,
		ClaimID:          5,
		PaymentMethod:    "bank_transfer",
		PaymentReference: "TXN-42",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsWorkflowViolationError(err))
}

func TestPayClaimUseCase_MissingPaymentDetails(t *testing.T) {
	updateCalled := false
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*claim.Claim, error) {
			return reconstructClaim(t, 5, 3, vo.StatusApproved), nil
		},
		UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
			updateCalled = true
			return nil
		},
	}

	uc := NewPayClaimUseCase(claimRepo, &mockNotificationRepository{}, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), PayClaimCommand{
		Actor:         adminActor,
		ClaimID:       5,
		PaymentMethod: "bank_transfer",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.False(t, updateCalled)
}

func TestPayClaimUseCase_NotFound(t *testing.T) {
	uc := NewPayClaimUseCase(&mockClaimRepository{}, &mockNotificationRepository{}, newTestTxManager(t), newTestMailer(), &mockLogger{})
	result, err := uc.Execute(context.Background(), PayClaimCommand{
		Actor:            adminActor,
		ClaimID:          99,
		PaymentMethod:    "bank_transfer",
		PaymentReference: "TXN-42",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
