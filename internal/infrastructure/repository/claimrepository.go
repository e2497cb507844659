package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"accountsforge/internal/domain/claim"
	"accountsforge/internal/infrastructure/persistence/mappers"
	"accountsforge/internal/infrastructure/persistence/models"
	"accountsforge/internal/shared/db"
)

type ClaimRepository struct {
	db     *gorm.DB
	mapper mappers.ClaimMapper
}

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{
		db:     db,
		mapper: mappers.NewClaimMapper(),
	}
}

func (r *ClaimRepository) Create(ctx context.Context, c *claim.Claim) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create claim: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint) (*claim.Claim, error) {
	var model models.ClaimModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find claim: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ClaimRepository) Update(ctx context.Context, c *claim.Claim) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ClaimModel{}).
		Where("id = ?", model.ID).
		Select("amount", "claim_type", "description", "status", "reviewer_id", "reviewed_at", "admin_note", "payment_info", "paid_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update claim: %w", result.Error)
	}

	return nil
}

func (r *ClaimRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ClaimModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return claim.ErrNotFound
	}
	return nil
}

func (r *ClaimRepository) List(ctx context.Context, filter claim.Filter) ([]*claim.Claim, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ClaimModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ClaimType != nil {
		query = query.Where("claim_type = ?", *filter.ClaimType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var claimModels []models.ClaimModel
	if err := query.Find(&claimModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}

	claims := make([]*claim.Claim, len(claimModels))
	for i, model := range claimModels {
		c, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		claims[i] = c
	}

	return claims, total, nil
}
