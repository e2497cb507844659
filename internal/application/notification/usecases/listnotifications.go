package usecases

import (
	"context"

	"accountsforge/internal/application/notification/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/notification"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type ListNotificationsQuery struct {
	Actor      authz.Actor
	UnreadOnly bool
	Limit      int
	Offset     int
}

type ListNotificationsResult struct {
	Notifications []*dto.NotificationDTO
	Total         int64
}

// ListNotificationsUseCase returns the actor's own notifications. There is
// no cross-recipient view, admins included.
type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := uc.notificationRepo.ListByRecipientID(ctx, query.Actor.ProfileID, query.UnreadOnly, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "recipient_id", query.Actor.ProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to list notifications")
	}

	return &ListNotificationsResult{
		Notifications: dto.FromEntities(notifications),
		Total:         total,
	}, nil
}
