package usecases

import (
	"context"

	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/notification"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type MarkAllNotificationsReadCommand struct {
	Actor authz.Actor
}

type MarkAllNotificationsReadResult struct {
	Updated int64
}

type MarkAllNotificationsReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkAllNotificationsReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkAllNotificationsReadUseCase {
	return &MarkAllNotificationsReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkAllNotificationsReadUseCase) Execute(ctx context.Context, cmd MarkAllNotificationsReadCommand) (*MarkAllNotificationsReadResult, error) {
	updated, err := uc.notificationRepo.MarkAllRead(ctx, cmd.Actor.ProfileID)
	if err != nil {
		uc.logger.Errorw("failed to mark notifications read", "recipient_id", cmd.Actor.ProfileID, "error", err)
		return nil, apperrors.NewInternalError("failed to mark notifications read")
	}

	uc.logger.Infow("notifications marked read", "recipient_id", cmd.Actor.ProfileID, "updated", updated)

	return &MarkAllNotificationsReadResult{Updated: updated}, nil
}
