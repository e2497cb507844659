package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"accountsforge/internal/domain/revenue"
	"accountsforge/internal/infrastructure/persistence/mappers"
	"accountsforge/internal/infrastructure/persistence/models"
	"accountsforge/internal/shared/db"
)

type RevenueRepository struct {
	db     *gorm.DB
	mapper mappers.RevenueMapper
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{
		db:     db,
		mapper: mappers.NewRevenueMapper(),
	}
}

func (r *RevenueRepository) Create(ctx context.Context, rev *revenue.Revenue) error {
	model := r.mapper.ToModel(rev)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create revenue: %w", err)
	}

	return rev.SetID(model.ID)
}

func (r *RevenueRepository) GetByID(ctx context.Context, id uint) (*revenue.Revenue, error) {
	var model models.RevenueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, revenue.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find revenue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RevenueRepository) Update(ctx context.Context, rev *revenue.Revenue) error {
	model := r.mapper.ToModel(rev)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RevenueModel{}).
		Where("id = ?", model.ID).
		Select("amount", "customer", "invoice_number", "commission_rate", "status", "reviewer_id", "reviewed_at", "admin_note", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update revenue: %w", result.Error)
	}

	return nil
}

func (r *RevenueRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RevenueModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete revenue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return revenue.ErrNotFound
	}
	return nil
}

func (r *RevenueRepository) List(ctx context.Context, filter revenue.Filter) ([]*revenue.Revenue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RevenueModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Customer != nil {
		query = query.Where("customer = ?", *filter.Customer)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count revenues: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var revenueModels []models.RevenueModel
	if err := query.Find(&revenueModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list revenues: %w", err)
	}

	revenues := make([]*revenue.Revenue, len(revenueModels))
	for i, model := range revenueModels {
		rev, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		revenues[i] = rev
	}

	return revenues, total, nil
}

func (r *RevenueRepository) SumAmountByStatus(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.RevenueModel{}).Where("status = ?", status)

	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	var total decimal.NullDecimal
	if err := query.Select("SUM(amount)").Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenues: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
