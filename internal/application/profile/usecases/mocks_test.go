package usecases

import (
	"context"
	"errors"

	"accountsforge/internal/domain/profile"
	"accountsforge/internal/infrastructure/auth"
	"accountsforge/internal/shared/logger"
)

type mockProfileRepository struct {
	CreateFunc           func(ctx context.Context, p *profile.Profile) error
	GetByIDFunc          func(ctx context.Context, id uint) (*profile.Profile, error)
	GetByAuthSubjectFunc func(ctx context.Context, subject string) (*profile.Profile, error)
	GetByEmailFunc       func(ctx context.Context, email string) (*profile.Profile, error)
	UpdateFunc           func(ctx context.Context, p *profile.Profile) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*profile.Profile, int64, error)
	RemoveDuplicatesFunc func(ctx context.Context) (int64, error)
}

func (m *mockProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id uint) (*profile.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, profile.ErrNotFound
}

func (m *mockProfileRepository) GetByAuthSubject(ctx context.Context, subject string) (*profile.Profile, error) {
	if m.GetByAuthSubjectFunc != nil {
		return m.GetByAuthSubjectFunc(ctx, subject)
	}
	return nil, profile.ErrNotFound
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, profile.ErrNotFound
}

func (m *mockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) List(ctx context.Context, limit, offset int) ([]*profile.Profile, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockProfileRepository) RemoveDuplicates(ctx context.Context) (int64, error) {
	if m.RemoveDuplicatesFunc != nil {
		return m.RemoveDuplicatesFunc(ctx)
	}
	return 0, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if "hashed:"+password != hash {
		return errors.New("password mismatch")
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(profileID uint, authSubject, role string) (*auth.TokenPair, error)
	RefreshFunc  func(refreshToken string) (*auth.TokenPair, error)
}

func (m *mockTokenService) Generate(profileID uint, authSubject, role string) (*auth.TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(profileID, authSubject, role)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenService) Refresh(refreshToken string) (*auth.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
