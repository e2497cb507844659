package usecases

import "context"

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type MarkNotificationReadExecutor interface {
	Execute(ctx context.Context, cmd MarkNotificationReadCommand) (*MarkNotificationReadResult, error)
}

type MarkAllNotificationsReadExecutor interface {
	Execute(ctx context.Context, cmd MarkAllNotificationsReadCommand) (*MarkAllNotificationsReadResult, error)
}
