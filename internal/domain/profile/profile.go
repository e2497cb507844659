package profile

import (
	"fmt"
	"strings"
	"time"

	vo "accountsforge/internal/domain/profile/valueobjects"
)

// Profile is the identity-store row for one authenticated principal.
// AuthSubject is the opaque identifier issued by the auth provider; exactly
// one profile exists per subject.
type Profile struct {
	id           uint
	authSubject  string
	email        string
	name         string
	role         vo.Role
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProfile(authSubject, email, name string, role vo.Role) (*Profile, error) {
	if strings.TrimSpace(authSubject) == "" {
		return nil, fmt.Errorf("auth subject is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &Profile{
		authSubject: authSubject,
		email:       email,
		name:        name,
		role:        role,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProfile(
	id uint,
	authSubject string,
	email string,
	name string,
	role vo.Role,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if authSubject == "" {
		return nil, fmt.Errorf("auth subject is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Profile{
		id:           id,
		authSubject:  authSubject,
		email:        email,
		name:         name,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Profile) ID() uint {
	return p.id
}

func (p *Profile) AuthSubject() string {
	return p.authSubject
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) Name() string {
	return p.name
}

func (p *Profile) Role() vo.Role {
	return p.role
}

func (p *Profile) PasswordHash() string {
	return p.passwordHash
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// SetPasswordHash stores a bcrypt hash for local password sign-in.
func (p *Profile) SetPasswordHash(hash string) {
	p.passwordHash = hash
	p.updatedAt = time.Now()
}

// UpdateDisplay changes display attributes. Display fields carry no
// authorization weight.
func (p *Profile) UpdateDisplay(name string) error {
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

// ChangeRole replaces the profile's role. Whether the caller may do this is
// decided by the authorization engine, not here.
func (p *Profile) ChangeRole(newRole vo.Role) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}
	if p.role == newRole {
		return nil
	}
	p.role = newRole
	p.updatedAt = time.Now()
	return nil
}
