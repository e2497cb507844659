package models

import (
	"time"

	"gorm.io/gorm"

	"accountsforge/internal/shared/constants"
)

type NotificationModel struct {
	ID          uint   `gorm:"primaryKey"`
	RecipientID uint   `gorm:"not null;index:idx_notifications_recipient_read"`
	Type        string `gorm:"size:20;not null"`
	Title       string `gorm:"size:255;not null"`
	Content     string `gorm:"type:text"`
	RelatedType string `gorm:"size:20"`
	RelatedID   *uint
	ReadStatus  string    `gorm:"size:20;not null;default:'unread';index:idx_notifications_recipient_read"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ReadStatus == "" {
		n.ReadStatus = "unread"
	}
	return nil
}
