// Package dto defines the report payloads returned by use cases.
package dto

import "time"

// ProfitLossDTO is the approved-ledger summary over a period. Amounts are
// fixed-point decimal strings; the Formatted fields carry locale-grouped
// renderings for display.
type ProfitLossDTO struct {
	From             *time.Time `json:"from,omitempty"`
	To               *time.Time `json:"to,omitempty"`
	TotalRevenue     string     `json:"total_revenue"`
	TotalExpense     string     `json:"total_expense"`
	NetProfit        string     `json:"net_profit"`
	FormattedRevenue string     `json:"formatted_revenue"`
	FormattedExpense string     `json:"formatted_expense"`
	FormattedNet     string     `json:"formatted_net"`
}
