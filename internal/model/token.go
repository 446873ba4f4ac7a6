package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager generates and validates session tokens.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}

// ResetTokenManager issues and verifies single-use password-reset
// tokens. Only the hash of a token is ever persisted.
type ResetTokenManager interface {
	Issue() (plain string, hash string, expiresAt time.Time, err error)
	Hash(plain string) string
	Verify(plain string, storedHash string, storedExpiry time.Time) bool
}
