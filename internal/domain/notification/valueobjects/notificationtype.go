package valueobjects

import "fmt"

// NotificationType tags a notification's intent.
type NotificationType string

const (
	TypeSuccess NotificationType = "success"
	TypeError   NotificationType = "error"
	TypeInfo    NotificationType = "info"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeSuccess: true,
	TypeError:   true,
	TypeInfo:    true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
