package profile

import "errors"

var (
	// ErrNotFound marks a lookup for a profile that does not exist.
	ErrNotFound = errors.New("profile not found")
	// ErrDuplicateSubject marks an insert for an auth subject that already
	// has a profile.
	ErrDuplicateSubject = errors.New("profile already exists for auth subject")
)
