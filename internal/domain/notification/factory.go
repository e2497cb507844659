package notification

import (
	"fmt"

	"github.com/shopspring/decimal"

	vo "accountsforge/internal/domain/notification/valueobjects"
)

// Related entity type tags carried on notifications.
const (
	RelatedExpense = "expense"
	RelatedRevenue = "revenue"
	RelatedClaim   = "claim"
)

// NewExpenseApproved builds the notification emitted when an expense is
// approved.
func NewExpenseApproved(ownerID, expenseID uint, note string) (*Notification, error) {
	content := "Your expense has been approved."
	if note != "" {
		content = content + "\n\n" + note
	}
	return NewNotification(ownerID, vo.TypeSuccess, "Expense approved", content, RelatedExpense, &expenseID)
}

// NewExpenseRejected builds the notification emitted when an expense is
// rejected, including the rejection reason when one was supplied.
func NewExpenseRejected(ownerID, expenseID uint, reason string) (*Notification, error) {
	content := "Your expense has been rejected."
	if reason != "" {
		content = content + "\n\nReason: " + reason
	}
	return NewNotification(ownerID, vo.TypeError, "Expense rejected", content, RelatedExpense, &expenseID)
}

// NewRevenueApproved builds the notification emitted when a revenue is
// approved, including the computed commission amount.
func NewRevenueApproved(ownerID, revenueID uint, commission decimal.Decimal) (*Notification, error) {
	content := fmt.Sprintf("Your revenue has been approved. Commission: %s", commission.StringFixed(2))
	return NewNotification(ownerID, vo.TypeSuccess, "Revenue approved", content, RelatedRevenue, &revenueID)
}

// NewRevenueRejected builds the notification emitted when a revenue is
// rejected.
func NewRevenueRejected(ownerID, revenueID uint, reason string) (*Notification, error) {
	content := "Your revenue record has been rejected."
	if reason != "" {
		content = content + "\n\nReason: " + reason
	}
	return NewNotification(ownerID, vo.TypeError, "Revenue rejected", content, RelatedRevenue, &revenueID)
}

// NewClaimRejected builds the notification emitted when a claim is rejected.
func NewClaimRejected(ownerID, claimID uint, reason string) (*Notification, error) {
	content := "Your claim has been rejected."
	if reason != "" {
		content = content + "\n\nReason: " + reason
	}
	return NewNotification(ownerID, vo.TypeError, "Claim rejected", content, RelatedClaim, &claimID)
}

// NewClaimPaid builds the notification emitted when a claim is paid out.
func NewClaimPaid(ownerID, claimID uint, method, reference string) (*Notification, error) {
	content := fmt.Sprintf("Your claim has been paid via %s (ref: %s).", method, reference)
	return NewNotification(ownerID, vo.TypeSuccess, "Claim paid", content, RelatedClaim, &claimID)
}
