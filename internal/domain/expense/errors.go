package expense

import "errors"

var (
	// ErrIllegalTransition marks a status change the workflow graph forbids.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrNotPending marks a mutation attempted on a non-pending expense.
	ErrNotPending = errors.New("expense is not pending")
	// ErrNotFound marks a lookup for an expense that does not exist.
	ErrNotFound = errors.New("expense not found")
)
