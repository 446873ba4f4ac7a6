package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/portfolio-server/internal/model"
)

// MediaStorage is a mock model.MediaStorage.
type MediaStorage struct {
	mock.Mock
}

func (m *MediaStorage) Upload(ctx context.Context, folder string, file model.FileUpload) (model.MediaRef, error) {
	args := m.Called(ctx, folder, file)
	return args.Get(0).(model.MediaRef), args.Error(1)
}

func (m *MediaStorage) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mailer is a mock model.Mailer.
type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// TokenManager is a mock model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Generate(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// ResetTokenManager is a mock model.ResetTokenManager.
type ResetTokenManager struct {
	mock.Mock
}

func (m *ResetTokenManager) Issue() (string, string, time.Time, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Get(2).(time.Time), args.Error(3)
}

func (m *ResetTokenManager) Hash(plain string) string {
	args := m.Called(plain)
	return args.String(0)
}

func (m *ResetTokenManager) Verify(plain, storedHash string, storedExpiry time.Time) bool {
	args := m.Called(plain, storedHash, storedExpiry)
	return args.Bool(0)
}

// PasswordHasher is a mock model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(secret string) (string, error) {
	args := m.Called(secret)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Verify(secret, hash string) bool {
	args := m.Called(secret, hash)
	return args.Bool(0)
}
