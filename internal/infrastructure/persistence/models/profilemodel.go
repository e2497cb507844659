package models

import (
	"time"

	"accountsforge/internal/shared/constants"
)

type ProfileModel struct {
	ID           uint   `gorm:"primaryKey"`
	AuthSubject  string `gorm:"size:255;not null;uniqueIndex:idx_profiles_auth_subject"`
	Email        string `gorm:"size:255;not null;index"`
	Name         string `gorm:"size:100"`
	Role         string `gorm:"size:20;not null"`
	PasswordHash string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProfileModel) TableName() string {
	return constants.TableProfiles
}
