package usecases

import (
	"context"
	"errors"
	"fmt"

	"accountsforge/internal/application/notification/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/notification"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type MarkNotificationReadCommand struct {
	Actor          authz.Actor
	NotificationID uint
}

type MarkNotificationReadResult struct {
	Notification *dto.NotificationDTO
}

type MarkNotificationReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) (*MarkNotificationReadResult, error) {
	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("notification %d not found", cmd.NotificationID))
		}
		uc.logger.Errorw("failed to get notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, apperrors.NewInternalError("failed to get notification")
	}

	if err := n.MarkReadBy(cmd.Actor.ProfileID); err != nil {
		uc.logger.Warnw("mark read denied", "notification_id", cmd.NotificationID, "actor_id", cmd.Actor.ProfileID)
		return nil, apperrors.NewForbiddenError("not allowed to mark this notification as read", string(authz.ReasonNotOwner))
	}

	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to update notification", "notification_id", cmd.NotificationID, "error", err)
		return nil, apperrors.NewInternalError("failed to update notification")
	}

	return &MarkNotificationReadResult{Notification: dto.FromEntity(n)}, nil
}
