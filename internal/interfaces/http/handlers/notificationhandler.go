package handlers

import (
	"github.com/gin-gonic/gin"

	"accountsforge/internal/application/notification/usecases"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

type NotificationHandler struct {
	listNotifications usecases.ListNotificationsExecutor
	markRead          usecases.MarkNotificationReadExecutor
	markAllRead       usecases.MarkAllNotificationsReadExecutor
	logger            logger.Interface
}

func NewNotificationHandler(
	listNotifications usecases.ListNotificationsExecutor,
	markRead usecases.MarkNotificationReadExecutor,
	markAllRead usecases.MarkAllNotificationsReadExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotifications: listNotifications,
		markRead:          markRead,
		markAllRead:       markAllRead,
		logger:            logger,
	}
}

// List godoc
// @Summary List own notifications
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param unread_only query bool false "Only unread"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listNotifications.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		Actor:      actor,
		UnreadOnly: c.Query("unread_only") == "true",
		Limit:      pagination.PageSize,
		Offset:     pagination.Offset(),
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Notifications, result.Total, pagination.Page, pagination.PageSize)
}

// MarkRead godoc
// @Summary Mark notification read
// @Security Bearer
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	notificationID, err := utils.ParseIDParam(c, "id", "notification")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.markRead.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{
		Actor:          actor,
		NotificationID: notificationID,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Notification)
}

// MarkAllRead godoc
// @Summary Mark all notifications read
// @Security Bearer
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.markAllRead.Execute(c.Request.Context(), usecases.MarkAllNotificationsReadCommand{
		Actor: actor,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"updated": result.Updated})
}
