package model

// PasswordHasher is a one-way transform for credential storage.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	// Verify reports a match; mismatch and malformed hash are both false.
	Verify(secret, hash string) bool
}
