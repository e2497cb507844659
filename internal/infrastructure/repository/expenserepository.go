package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"accountsforge/internal/domain/expense"
	"accountsforge/internal/infrastructure/persistence/mappers"
	"accountsforge/internal/infrastructure/persistence/models"
	"accountsforge/internal/shared/db"
)

type ExpenseRepository struct {
	db     *gorm.DB
	mapper mappers.ExpenseMapper
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		mapper: mappers.NewExpenseMapper(),
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id uint) (*expense.Expense, error) {
	var model models.ExpenseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expense.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists every column so zero values (cleared note, nil reviewer)
	// are written too; Updates alone skips them.
	result := tx.
		Model(&models.ExpenseModel{}).
		Where("id = ?", model.ID).
		Select("amount", "category", "description", "status", "reviewer_id", "reviewed_at", "admin_note", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}

	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ExpenseModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return expense.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context, filter expense.Filter) ([]*expense.Expense, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ExpenseModel{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var expenseModels []models.ExpenseModel
	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]*expense.Expense, len(expenseModels))
	for i, model := range expenseModels {
		e, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		expenses[i] = e
	}

	return expenses, total, nil
}

func (r *ExpenseRepository) SumAmountByStatus(ctx context.Context, status string, from, to *time.Time) (decimal.Decimal, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ExpenseModel{}).Where("status = ?", status)

	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	var total decimal.NullDecimal
	if err := query.Select("SUM(amount)").Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
