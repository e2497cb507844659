// Package dto defines the revenue data transfer objects returned by use cases.
package dto

import (
	"time"

	"accountsforge/internal/domain/revenue"
)

type RevenueDTO struct {
	ID             uint       `json:"id"`
	OwnerID        uint       `json:"owner_id"`
	Amount         string     `json:"amount"`
	Customer       string     `json:"customer"`
	InvoiceNumber  string     `json:"invoice_number,omitempty"`
	CommissionRate string     `json:"commission_rate"`
	Status         string     `json:"status"`
	ReviewerID     *uint      `json:"reviewer_id,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	AdminNote      string     `json:"admin_note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CommissionRecordDTO struct {
	ID        uint      `json:"id"`
	RevenueID uint      `json:"revenue_id"`
	OwnerID   uint      `json:"owner_id"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func FromEntity(r *revenue.Revenue) *RevenueDTO {
	return &RevenueDTO{
		ID:             r.ID(),
		OwnerID:        r.OwnerID(),
		Amount:         r.Amount().StringFixed(2),
		Customer:       r.Customer(),
		InvoiceNumber:  r.InvoiceNumber(),
		CommissionRate: r.CommissionRate().String(),
		Status:         r.Status().String(),
		ReviewerID:     r.ReviewerID(),
		ReviewedAt:     r.ReviewedAt(),
		AdminNote:      r.AdminNote(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func FromEntities(revenues []*revenue.Revenue) []*RevenueDTO {
	dtos := make([]*RevenueDTO, len(revenues))
	for i, r := range revenues {
		dtos[i] = FromEntity(r)
	}
	return dtos
}

func CommissionFromEntity(c *revenue.CommissionRecord) *CommissionRecordDTO {
	return &CommissionRecordDTO{
		ID:        c.ID(),
		RevenueID: c.RevenueID(),
		OwnerID:   c.OwnerID(),
		Amount:    c.Amount().StringFixed(2),
		CreatedAt: c.CreatedAt(),
	}
}

func CommissionsFromEntities(records []*revenue.CommissionRecord) []*CommissionRecordDTO {
	dtos := make([]*CommissionRecordDTO, len(records))
	for i, c := range records {
		dtos[i] = CommissionFromEntity(c)
	}
	return dtos
}
