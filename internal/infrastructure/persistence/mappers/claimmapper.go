package mappers

import (
	"encoding/json"
	"fmt"

	"accountsforge/internal/domain/claim"
	vo "accountsforge/internal/domain/claim/valueobjects"
	"accountsforge/internal/infrastructure/persistence/models"
)

// ClaimMapper handles the conversion between Claim domain entities and persistence models.
type ClaimMapper interface {
	// ToModel converts a claim domain entity to a persistence model.
	ToModel(c *claim.Claim) *models.ClaimModel

	// ToDomain converts a claim persistence model to a domain entity.
	ToDomain(model *models.ClaimModel) (*claim.Claim, error)
}

// ClaimMapperImpl is the concrete implementation of ClaimMapper.
type ClaimMapperImpl struct{}

// NewClaimMapper creates a new ClaimMapper.
func NewClaimMapper() ClaimMapper {
	return &ClaimMapperImpl{}
}

type paymentInfo struct {
	Method    string `json:"method"`
	Reference string `json:"reference"`
}

func (m *ClaimMapperImpl) ToModel(c *claim.Claim) *models.ClaimModel {
	model := &models.ClaimModel{
		ID:          c.ID(),
		OwnerID:     c.OwnerID(),
		Amount:      c.Amount(),
		ClaimType:   c.ClaimType(),
		Description: c.Description(),
		ExpenseID:   c.ExpenseID(),
		RevenueID:   c.RevenueID(),
		Status:      c.Status().String(),
		ReviewerID:  c.ReviewerID(),
		ReviewedAt:  c.ReviewedAt(),
		AdminNote:   c.AdminNote(),
		PaidAt:      c.PaidAt(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}

	if c.PaymentMethod() != "" || c.PaymentReference() != "" {
		infoJSON, _ := json.Marshal(paymentInfo{
			Method:    c.PaymentMethod(),
			Reference: c.PaymentReference(),
		})
		model.PaymentInfo = infoJSON
	}

	return model
}

func (m *ClaimMapperImpl) ToDomain(model *models.ClaimModel) (*claim.Claim, error) {
	status, err := vo.NewClaimStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var info paymentInfo
	if len(model.PaymentInfo) > 0 {
		if err := json.Unmarshal(model.PaymentInfo, &info); err != nil {
			return nil, fmt.Errorf("failed to unmarshal claim payment info (id=%d): %w", model.ID, err)
		}
	}

	return claim.ReconstructClaim(
		model.ID,
		model.OwnerID,
		model.Amount,
		model.ClaimType,
		model.Description,
		model.ExpenseID,
		model.RevenueID,
		status,
		model.ReviewerID,
		model.ReviewedAt,
		model.AdminNote,
		info.Method,
		info.Reference,
		model.PaidAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
