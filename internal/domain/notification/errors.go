package notification

import "errors"

// ErrNotFound marks a lookup for a notification that does not exist.
var ErrNotFound = errors.New("notification not found")
