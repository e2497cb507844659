package valueobjects

import "fmt"

// RevenueStatus is the closed lifecycle set for revenue records. Approved
// and rejected are terminal.
type RevenueStatus string

const (
	StatusPending  RevenueStatus = "pending"
	StatusApproved RevenueStatus = "approved"
	StatusRejected RevenueStatus = "rejected"
)

var validRevenueStatuses = map[RevenueStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

var revenueStatusTransitions = map[RevenueStatus][]RevenueStatus{
	StatusPending: {
		StatusApproved,
		StatusRejected,
	},
	StatusApproved: {},
	StatusRejected: {},
}

func (s RevenueStatus) String() string {
	return string(s)
}

func (s RevenueStatus) IsValid() bool {
	return validRevenueStatuses[s]
}

func (s RevenueStatus) CanTransitionTo(newStatus RevenueStatus) bool {
	allowed, ok := revenueStatusTransitions[s]
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

func (s RevenueStatus) IsPending() bool {
	return s == StatusPending
}

func (s RevenueStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s RevenueStatus) IsRejected() bool {
	return s == StatusRejected
}

func (s RevenueStatus) IsTerminal() bool {
	return len(revenueStatusTransitions[s]) == 0 && s.IsValid()
}

func NewRevenueStatus(s string) (RevenueStatus, error) {
	rs := RevenueStatus(s)
	if !rs.IsValid() {
		return "", fmt.Errorf("invalid revenue status: %s", s)
	}
	return rs, nil
}
