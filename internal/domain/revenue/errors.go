package revenue

import "errors"

var (
	// ErrIllegalTransition marks a status change the workflow graph forbids.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrNotPending marks a mutation attempted on a non-pending revenue.
	ErrNotPending = errors.New("revenue is not pending")
	// ErrDuplicateCommission marks an attempt to create a second commission
	// record for the same revenue.
	ErrDuplicateCommission = errors.New("commission record already exists for revenue")
	// ErrNotFound marks a lookup for a revenue that does not exist.
	ErrNotFound = errors.New("revenue not found")
	// ErrCommissionNotFound marks a lookup for a missing commission record.
	ErrCommissionNotFound = errors.New("commission record not found")
)
