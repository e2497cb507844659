package mappers

import (
	"accountsforge/internal/domain/profile"
	vo "accountsforge/internal/domain/profile/valueobjects"
	"accountsforge/internal/infrastructure/persistence/models"
)

// ProfileMapper handles the conversion between Profile domain entities and persistence models.
type ProfileMapper interface {
	// ToModel converts a profile domain entity to a persistence model.
	ToModel(p *profile.Profile) *models.ProfileModel

	// ToDomain converts a profile persistence model to a domain entity.
	ToDomain(model *models.ProfileModel) (*profile.Profile, error)
}

// ProfileMapperImpl is the concrete implementation of ProfileMapper.
type ProfileMapperImpl struct{}

// NewProfileMapper creates a new ProfileMapper.
func NewProfileMapper() ProfileMapper {
	return &ProfileMapperImpl{}
}

func (m *ProfileMapperImpl) ToModel(p *profile.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:           p.ID(),
		AuthSubject:  p.AuthSubject(),
		Email:        p.Email(),
		Name:         p.Name(),
		Role:         p.Role().String(),
		PasswordHash: p.PasswordHash(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func (m *ProfileMapperImpl) ToDomain(model *models.ProfileModel) (*profile.Profile, error) {
	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, err
	}

	return profile.ReconstructProfile(
		model.ID,
		model.AuthSubject,
		model.Email,
		model.Name,
		role,
		model.PasswordHash,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
