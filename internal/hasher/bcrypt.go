// Package hasher provides one-way password hashing.
package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// cost is the fixed bcrypt work factor for new hashes.
const cost = 10

// Bcrypt hashes and verifies passwords with bcrypt.
type Bcrypt struct{}

// NewBcrypt creates a new Bcrypt hasher.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

// Hash produces a salted bcrypt hash of the secret.
func (h *Bcrypt) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether secret matches the stored hash. A malformed
// hash and a wrong secret are both reported as false.
func (h *Bcrypt) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
