package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"accountsforge/internal/domain/profile"
	"accountsforge/internal/infrastructure/persistence/mappers"
	"accountsforge/internal/infrastructure/persistence/models"
	"accountsforge/internal/shared/db"
	apperrors "accountsforge/internal/shared/errors"
)

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewProfileMapper(),
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return profile.ErrDuplicateSubject
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint) (*profile.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) GetByAuthSubject(ctx context.Context, subject string) (*profile.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("auth_subject = ?", subject).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	var model models.ProfileModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ?", email).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProfileModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}

	return nil
}

func (r *ProfileRepository) List(ctx context.Context, limit, offset int) ([]*profile.Profile, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProfileModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	var profileModels []models.ProfileModel
	if err := query.
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&profileModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*profile.Profile, len(profileModels))
	for i, model := range profileModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		profiles[i] = p
	}

	return profiles, total, nil
}

// RemoveDuplicates deletes surplus rows per auth subject, keeping the row
// with the lowest ID (earliest insert). The self-join form works on both
// MySQL and SQLite.
func (r *ProfileRepository) RemoveDuplicates(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Exec(
		"DELETE FROM profiles WHERE id NOT IN (" +
			"SELECT keep_id FROM (" +
			"SELECT MIN(id) AS keep_id FROM profiles GROUP BY auth_subject" +
			") AS keepers)",
	)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to remove duplicate profiles: %w", result.Error)
	}

	return result.RowsAffected, nil
}
