package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"accountsforge/internal/domain/revenue"
	"accountsforge/internal/infrastructure/persistence/mappers"
	"accountsforge/internal/infrastructure/persistence/models"
	"accountsforge/internal/shared/db"
	apperrors "accountsforge/internal/shared/errors"
)

type CommissionRepository struct {
	db     *gorm.DB
	mapper mappers.RevenueMapper
}

func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{
		db:     db,
		mapper: mappers.NewRevenueMapper(),
	}
}

// Create inserts the commission record. The unique index on revenue_id turns
// a second insert for the same revenue into ErrDuplicateCommission.
func (r *CommissionRepository) Create(ctx context.Context, c *revenue.CommissionRecord) error {
	model := r.mapper.CommissionToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return revenue.ErrDuplicateCommission
		}
		return fmt.Errorf("failed to create commission record: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommissionRepository) GetByRevenueID(ctx context.Context, revenueID uint) (*revenue.CommissionRecord, error) {
	var model models.CommissionRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("revenue_id = ?", revenueID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, revenue.ErrCommissionNotFound
		}
		return nil, fmt.Errorf("failed to find commission record: %w", err)
	}

	return r.mapper.CommissionToDomain(&model)
}

func (r *CommissionRepository) ListByOwnerID(ctx context.Context, ownerID uint, limit, offset int) ([]*revenue.CommissionRecord, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CommissionRecordModel{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count commission records: %w", err)
	}

	var recordModels []models.CommissionRecordModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recordModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list commission records: %w", err)
	}

	records := make([]*revenue.CommissionRecord, len(recordModels))
	for i, model := range recordModels {
		c, err := r.mapper.CommissionToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		records[i] = c
	}

	return records, total, nil
}
