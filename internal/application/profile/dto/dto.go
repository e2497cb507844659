// Package dto defines the profile data transfer objects returned by use cases.
package dto

import (
	"time"

	"accountsforge/internal/domain/profile"
)

type ProfileDTO struct {
	ID          uint      `json:"id"`
	AuthSubject string    `json:"auth_subject"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TokenPairDTO is the credential payload returned by sign-in flows.
type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func FromEntity(p *profile.Profile) *ProfileDTO {
	return &ProfileDTO{
		ID:          p.ID(),
		AuthSubject: p.AuthSubject(),
		Email:       p.Email(),
		Name:        p.Name(),
		Role:        p.Role().String(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func FromEntities(profiles []*profile.Profile) []*ProfileDTO {
	dtos := make([]*ProfileDTO, len(profiles))
	for i, p := range profiles {
		dtos[i] = FromEntity(p)
	}
	return dtos
}
