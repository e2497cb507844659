package claim

import "errors"

var (
	// ErrIllegalTransition marks a status change the workflow graph forbids.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrNotPending marks a mutation attempted on a non-pending claim.
	ErrNotPending = errors.New("claim is not pending")
	// ErrNotFound marks a lookup for a claim that does not exist.
	ErrNotFound = errors.New("claim not found")
)
