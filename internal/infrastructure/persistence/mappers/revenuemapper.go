package mappers

import (
	"accountsforge/internal/domain/revenue"
	vo "accountsforge/internal/domain/revenue/valueobjects"
	"accountsforge/internal/infrastructure/persistence/models"
)

// RevenueMapper handles the conversion between Revenue domain entities and persistence models.
type RevenueMapper interface {
	// ToModel converts a revenue domain entity to a persistence model.
	ToModel(r *revenue.Revenue) *models.RevenueModel

	// ToDomain converts a revenue persistence model to a domain entity.
	ToDomain(model *models.RevenueModel) (*revenue.Revenue, error)

	// CommissionToModel converts a commission record to a persistence model.
	CommissionToModel(c *revenue.CommissionRecord) *models.CommissionRecordModel

	// CommissionToDomain converts a commission record persistence model to a domain entity.
	CommissionToDomain(model *models.CommissionRecordModel) (*revenue.CommissionRecord, error)
}

// RevenueMapperImpl is the concrete implementation of RevenueMapper.
type RevenueMapperImpl struct{}

// NewRevenueMapper creates a new RevenueMapper.
func NewRevenueMapper() RevenueMapper {
	return &RevenueMapperImpl{}
}

func (m *RevenueMapperImpl) ToModel(r *revenue.Revenue) *models.RevenueModel {
	return &models.RevenueModel{
		ID:             r.ID(),
		OwnerID:        r.OwnerID(),
		Amount:         r.Amount(),
		Customer:       r.Customer(),
		InvoiceNumber:  r.InvoiceNumber(),
		CommissionRate: r.CommissionRate().Value(),
		Status:         r.Status().String(),
		ReviewerID:     r.ReviewerID(),
		ReviewedAt:     r.ReviewedAt(),
		AdminNote:      r.AdminNote(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func (m *RevenueMapperImpl) ToDomain(model *models.RevenueModel) (*revenue.Revenue, error) {
	rate, err := vo.NewCommissionRate(model.CommissionRate)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewRevenueStatus(model.Status)
	if err != nil {
		return nil, err
	}

	return revenue.ReconstructRevenue(
		model.ID,
		model.OwnerID,
		model.Amount,
		model.Customer,
		model.InvoiceNumber,
		rate,
		status,
		model.ReviewerID,
		model.ReviewedAt,
		model.AdminNote,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *RevenueMapperImpl) CommissionToModel(c *revenue.CommissionRecord) *models.CommissionRecordModel {
	return &models.CommissionRecordModel{
		ID:        c.ID(),
		RevenueID: c.RevenueID(),
		OwnerID:   c.OwnerID(),
		Amount:    c.Amount(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *RevenueMapperImpl) CommissionToDomain(model *models.CommissionRecordModel) (*revenue.CommissionRecord, error) {
	return revenue.ReconstructCommissionRecord(
		model.ID,
		model.RevenueID,
		model.OwnerID,
		model.Amount,
		model.CreatedAt,
	)
}
