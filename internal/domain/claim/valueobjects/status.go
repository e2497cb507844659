package valueobjects

import "fmt"

// ClaimStatus is the closed lifecycle set for claims. Unlike expenses and
// revenues, an approved claim has one further transition: paid. Rejected
// and paid are terminal.
type ClaimStatus string

const (
	StatusPending  ClaimStatus = "pending"
	StatusApproved ClaimStatus = "approved"
	StatusRejected ClaimStatus = "rejected"
	StatusPaid     ClaimStatus = "paid"
)

var validClaimStatuses = map[ClaimStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
	StatusPaid:     true,
}

var claimStatusTransitions = map[ClaimStatus][]ClaimStatus{
	StatusPending: {
		StatusApproved,
		StatusRejected,
	},
	StatusApproved: {
		StatusPaid,
	},
	StatusRejected: {},
	StatusPaid:     {},
}

func (s ClaimStatus) String() string {
	return string(s)
}

func (s ClaimStatus) IsValid() bool {
	return validClaimStatuses[s]
}

func (s ClaimStatus) CanTransitionTo(newStatus ClaimStatus) bool {
	allowed, ok := claimStatusTransitions[s]
	if !ok {
		return false
	}
	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s ClaimStatus) IsPending() bool {
	return s == StatusPending
}

func (s ClaimStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s ClaimStatus) IsRejected() bool {
	return s == StatusRejected
}

func (s ClaimStatus) IsPaid() bool {
	return s == StatusPaid
}

func (s ClaimStatus) IsTerminal() bool {
	return len(claimStatusTransitions[s]) == 0 && s.IsValid()
}

func NewClaimStatus(s string) (ClaimStatus, error) {
	cs := ClaimStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid claim status: %s", s)
	}
	return cs, nil
}
