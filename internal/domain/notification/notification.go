package notification

import (
	"fmt"
	"time"

	vo "accountsforge/internal/domain/notification/valueobjects"
)

// Notification targets exactly one principal and references the ledger
// entity that triggered it. Read state is mutable only by the target.
type Notification struct {
	id          uint
	recipientID uint
	notifType   vo.NotificationType
	title       string
	content     string
	relatedType string
	relatedID   *uint
	readStatus  vo.ReadStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewNotification(recipientID uint, notifType vo.NotificationType, title, content, relatedType string, relatedID *uint) (*Notification, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	now := time.Now()
	return &Notification{
		recipientID: recipientID,
		notifType:   notifType,
		title:       title,
		content:     content,
		relatedType: relatedType,
		relatedID:   relatedID,
		readStatus:  vo.ReadStatusUnread,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructNotification(
	id uint,
	recipientID uint,
	notifType vo.NotificationType,
	title string,
	content string,
	relatedType string,
	relatedID *uint,
	readStatus vo.ReadStatus,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}
	if !readStatus.IsValid() {
		return nil, fmt.Errorf("invalid read status: %s", readStatus)
	}

	return &Notification{
		id:          id,
		recipientID: recipientID,
		notifType:   notifType,
		title:       title,
		content:     content,
		relatedType: relatedType,
		relatedID:   relatedID,
		readStatus:  readStatus,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) RecipientID() uint {
	return n.recipientID
}

func (n *Notification) Type() vo.NotificationType {
	return n.notifType
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Content() string {
	return n.content
}

func (n *Notification) RelatedType() string {
	return n.relatedType
}

func (n *Notification) RelatedID() *uint {
	return n.relatedID
}

func (n *Notification) ReadStatus() vo.ReadStatus {
	return n.readStatus
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) UpdatedAt() time.Time {
	return n.updatedAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkReadBy flips the read state. Only the recipient may do this.
func (n *Notification) MarkReadBy(actorID uint) error {
	if actorID != n.recipientID {
		return fmt.Errorf("only the recipient can mark a notification as read")
	}
	if n.readStatus.IsRead() {
		return nil
	}
	n.readStatus = vo.ReadStatusRead
	n.updatedAt = time.Now()
	return nil
}
