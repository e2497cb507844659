// Package dto defines the notification data transfer objects returned by use cases.
package dto

import (
	"time"

	"accountsforge/internal/domain/notification"
)

type NotificationDTO struct {
	ID          uint      `json:"id"`
	RecipientID uint      `json:"recipient_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	RelatedType string    `json:"related_type,omitempty"`
	RelatedID   *uint     `json:"related_id,omitempty"`
	ReadStatus  string    `json:"read_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromEntity(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
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

func FromEntities(notifications []*notification.Notification) []*NotificationDTO {
	dtos := make([]*NotificationDTO, len(notifications))
	for i, n := range notifications {
		dtos[i] = FromEntity(n)
	}
	return dtos
}
