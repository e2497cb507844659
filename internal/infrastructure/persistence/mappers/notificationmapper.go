package mappers

import (
	"accountsforge/internal/domain/notification"
	vo "accountsforge/internal/domain/notification/valueobjects"
	"accountsforge/internal/infrastructure/persistence/models"
)

// NotificationMapper handles the conversion between Notification domain entities and persistence models.
type NotificationMapper interface {
	// ToModel converts a notification domain entity to a persistence model.
	ToModel(n *notification.Notification) *models.NotificationModel

	// ToDomain converts a notification persistence model to a domain entity.
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

// NotificationMapperImpl is the concrete implementation of NotificationMapper.
type NotificationMapperImpl struct{}

// NewNotificationMapper creates a new NotificationMapper.
func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:          n.ID(),
		RecipientID: n.RecipientID(),
		Type:        n.Type().String(),
		Title:       n.Title(),
		Content:     n.Content(),
		RelatedType: n.RelatedType(),
		RelatedID:   n.RelatedID(),
		ReadStatus:  n.ReadStatus().String(),
		CreatedAt:   n.CreatedAt(),
		UpdatedAt:   n.UpdatedAt(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	notifType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, err
	}
	readStatus, err := vo.NewReadStatus(model.ReadStatus)
	if err != nil {
		return nil, err
	}

	return notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		notifType,
		model.Title,
		model.Content,
		model.RelatedType,
		model.RelatedID,
		readStatus,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
