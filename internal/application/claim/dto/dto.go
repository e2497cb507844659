// Package dto defines the claim data transfer objects returned by use cases.
package dto

import (
	"time"

	"accountsforge/internal/domain/claim"
)

type ClaimDTO struct {
	ID               uint       `json:"id"`
	OwnerID          uint       `json:"owner_id"`
	Amount           string     `json:"amount"`
	ClaimType        string     `json:"claim_type"`
	Description      string     `json:"description"`
	ExpenseID        *uint      `json:"expense_id,omitempty"`
	RevenueID        *uint      `json:"revenue_id,omitempty"`
	Status           string     `json:"status"`
	ReviewerID       *uint      `json:"reviewer_id,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	AdminNote        string     `json:"admin_note,omitempty"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromEntity(c *claim.Claim) *ClaimDTO {
	return &ClaimDTO{
		ID:               c.ID(),
		OwnerID:          c.OwnerID(),
		Amount:           c.Amount().StringFixed(2),
		ClaimType:        c.ClaimType(),
		Description:      c.Description(),
		ExpenseID:        c.ExpenseID(),
		RevenueID:        c.RevenueID(),
		Status:           c.Status().String(),
		ReviewerID:       c.ReviewerID(),
		ReviewedAt:       c.ReviewedAt(),
		AdminNote:        c.AdminNote(),
		PaymentMethod:    c.PaymentMethod(),
		PaymentReference: c.PaymentReference(),
		PaidAt:           c.PaidAt(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

func FromEntities(claims []*claim.Claim) []*ClaimDTO {
	dtos := make([]*ClaimDTO, len(claims))
	for i, c := range claims {
		dtos[i] = FromEntity(c)
	}
	return dtos
}
