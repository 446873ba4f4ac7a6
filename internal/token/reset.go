package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dtroode/portfolio-server/internal/model"
)

const (
	// resetTokenBytes is the entropy of a plain reset token.
	resetTokenBytes = 32
	// resetTTL bounds how long an issued reset token stays valid.
	resetTTL = 15 * time.Minute
)

// Reset issues and verifies single-use password-reset tokens. The
// plain token leaves the process exactly once (in the reset mail);
// only its SHA-256 digest is persisted.
type Reset struct {
	now func() time.Time
}

// NewReset creates a new reset token manager.
func NewReset() model.ResetTokenManager {
	return &Reset{now: time.Now}
}

// Issue generates a fresh token, its persistable hash and expiry.
func (r *Reset) Issue() (plain string, hash string, expiresAt time.Time, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to generate reset token: %w", err)
	}

	plain = hex.EncodeToString(buf)
	return plain, r.Hash(plain), r.now().Add(resetTTL), nil
}

// Hash returns the hex SHA-256 digest of a plain token.
func (r *Reset) Hash(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether plain matches the stored hash and the stored
// expiry has not passed. Mismatch and expiry are indistinguishable.
func (r *Reset) Verify(plain string, storedHash string, storedExpiry time.Time) bool {
	if r.now().After(storedExpiry) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(r.Hash(plain)), []byte(storedHash)) == 1
}
