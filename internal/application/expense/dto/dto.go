// Package dto defines the expense data transfer objects returned by use cases.
package dto

import (
	"time"

	"accountsforge/internal/domain/expense"
)

type ExpenseDTO struct {
	ID          uint       `json:"id"`
	OwnerID     uint       `json:"owner_id"`
	Amount      string     `json:"amount"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	ReviewerID  *uint      `json:"reviewer_id,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	AdminNote   string     `json:"admin_note,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromEntity(e *expense.Expense) *ExpenseDTO {
	return &ExpenseDTO{
		ID:          e.ID(),
		OwnerID:     e.OwnerID(),
		Amount:      e.Amount().StringFixed(2),
		Category:    e.Category(),
		Description: e.Description(),
		Status:      e.Status().String(),
		ReviewerID:  e.ReviewerID(),
		ReviewedAt:  e.ReviewedAt(),
		AdminNote:   e.AdminNote(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func FromEntities(expenses []*expense.Expense) []*ExpenseDTO {
	dtos := make([]*ExpenseDTO, len(expenses))
	for i, e := range expenses {
		dtos[i] = FromEntity(e)
	}
	return dtos
}
