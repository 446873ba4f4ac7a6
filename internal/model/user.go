package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetByResetHash returns the user whose pending reset token hash
	// matches. Expiry is checked by the caller, not the store.
	GetByResetHash(ctx context.Context, hash string) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (User, error)
	// UpdatePassword sets a new password hash and clears any pending
	// reset state in the same statement.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetResetState(ctx context.Context, id uuid.UUID, state ResetState) error
}

// User represents a stored user with credential and profile state.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	AboutMe      string
	PortfolioURL string
	GithubURL    string
	InstagramURL string
	TwitterURL   string
	FacebookURL  string
	LinkedInURL  string
	Avatar       MediaRef
	Resume       MediaRef
	Reset        ResetState
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate carries profile fields for a partial update. Nil
// pointers leave the stored value untouched.
type ProfileUpdate struct {
	FullName     *string
	Email        *string
	Phone        *string
	AboutMe      *string
	PortfolioURL *string
	GithubURL    *string
	InstagramURL *string
	TwitterURL   *string
	FacebookURL  *string
	LinkedInURL  *string
	Avatar       *MediaRef
	Resume       *MediaRef
}

// ResetState is the password-reset state of a user. It is either
// inactive or a pending (token hash, expiry) pair; the pair cannot be
// set independently.
type ResetState struct {
	pending   bool
	tokenHash string
	expiresAt time.Time
}

// NoActiveReset returns the inactive reset state.
func NoActiveReset() ResetState {
	return ResetState{}
}

// PendingReset returns a reset state holding a token hash and expiry.
func PendingReset(tokenHash string, expiresAt time.Time) ResetState {
	return ResetState{pending: true, tokenHash: tokenHash, expiresAt: expiresAt}
}

// Pending reports whether a reset is active, returning the stored
// token hash and expiry when it is.
func (s ResetState) Pending() (tokenHash string, expiresAt time.Time, ok bool) {
	if !s.pending {
		return "", time.Time{}, false
	}
	return s.tokenHash, s.expiresAt, true
}
