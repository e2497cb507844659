package valueobjects

import "fmt"

// ExpenseStatus is the closed lifecycle set for expenses. Approved and
// rejected are terminal.
type ExpenseStatus string

const (
	StatusPending  ExpenseStatus = "pending"
	StatusApproved ExpenseStatus = "approved"
	StatusRejected ExpenseStatus = "rejected"
)

var validExpenseStatuses = map[ExpenseStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

var expenseStatusTransitions = map[ExpenseStatus][]ExpenseStatus{
	StatusPending: {
		StatusApproved,
		StatusRejected,
	},
	StatusApproved: {},
	StatusRejected: {},
}

func (s ExpenseStatus) String() string {
	return string(s)
}

func (s ExpenseStatus) IsValid() bool {
	return validExpenseStatuses[s]
}

func (s ExpenseStatus) CanTransitionTo(newStatus ExpenseStatus) bool {
	allowed, ok := expenseStatusTransitions[s]
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

func (s ExpenseStatus) IsPending() bool {
	return s == StatusPending
}

func (s ExpenseStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s ExpenseStatus) IsRejected() bool {
	return s == StatusRejected
}

// IsTerminal reports whether no further transition is legal.
func (s ExpenseStatus) IsTerminal() bool {
	return len(expenseStatusTransitions[s]) == 0 && s.IsValid()
}

func NewExpenseStatus(s string) (ExpenseStatus, error) {
	es := ExpenseStatus(s)
	if !es.IsValid() {
		return "", fmt.Errorf("invalid expense status: %s", s)
	}
	return es, nil
}
