package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/logger"
	"github.com/dtroode/portfolio-server/internal/model"
)

const (
	avatarFolder = "avatars"
	resumeFolder = "resumes"

	minPasswordLength = 8
)

// Auth orchestrates registration, login, password change and
// password-reset flows.
type Auth struct {
	users        model.UserStore
	hasher       model.PasswordHasher
	tokens       model.TokenManager
	resetTokens  model.ResetTokenManager
	media        model.MediaStorage
	mailer       model.Mailer
	resetURLBase string
	logger       *logger.Logger
}

// NewAuth creates the auth flow controller.
func NewAuth(
	users model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	resetTokens model.ResetTokenManager,
	media model.MediaStorage,
	mailer model.Mailer,
	resetURLBase string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		resetTokens:  resetTokens,
		media:        media,
		mailer:       mailer,
		resetURLBase: resetURLBase,
		logger:       logger,
	}
}

// RegisterInput carries registration fields and required attachments.
type RegisterInput struct {
	FullName     string
	Email        string
	Phone        string
	AboutMe      string
	Password     string
	PortfolioURL string
	GithubURL    string
	InstagramURL string
	TwitterURL   string
	FacebookURL  string
	LinkedInURL  string
	Avatar       *model.FileUpload
	Resume       *model.FileUpload
}

func (in RegisterInput) validate() error {
	switch {
	case in.FullName == "":
		return apperr.NewValidation("full name is required")
	case in.Email == "":
		return apperr.NewValidation("email is required")
	case in.Phone == "":
		return apperr.NewValidation("phone number is required")
	case in.AboutMe == "":
		return apperr.NewValidation("about me field is required")
	case in.Password == "":
		return apperr.NewValidation("password is required")
	case len(in.Password) < minPasswordLength:
		return apperr.NewValidation("password must contain at least 8 characters")
	case in.PortfolioURL == "":
		return apperr.NewValidation("portfolio URL is required")
	case in.Avatar == nil || in.Resume == nil:
		return apperr.NewValidation("avatar and resume are required")
	}
	return nil
}

// Register validates input, stores the media attachments, persists a
// new user and issues a session token.
func (a *Auth) Register(ctx context.Context, in RegisterInput) (model.User, string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", in.Email)

	if err := in.validate(); err != nil {
		return model.User{}, "", err
	}

	existing, err := a.users.GetByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: email already taken",
			"email", in.Email)
		return model.User{}, "", apperr.NewEmailTaken(in.Email)
	}

	avatar, err := a.media.Upload(ctx, avatarFolder, *in.Avatar)
	if err != nil {
		a.logger.Error("Auth service: failed to upload avatar",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, "", apperr.NewUpload("failed to store avatar")
	}

	resume, err := a.media.Upload(ctx, resumeFolder, *in.Resume)
	if err != nil {
		a.logger.Error("Auth service: failed to upload resume",
			"email", in.Email,
			"error", err.Error())
		// The avatar is already stored; remove it so the aborted
		// registration leaves nothing behind.
		if delErr := a.media.Delete(ctx, avatar.ID); delErr != nil {
			a.logger.Error("Auth service: failed to delete orphaned avatar",
				"media_id", avatar.ID,
				"error", delErr.Error())
		}
		return model.User{}, "", apperr.NewUpload("failed to store resume")
	}

	passwordHash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: passwordHash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		AboutMe:      in.AboutMe,
		PortfolioURL: in.PortfolioURL,
		GithubURL:    in.GithubURL,
		InstagramURL: in.InstagramURL,
		TwitterURL:   in.TwitterURL,
		FacebookURL:  in.FacebookURL,
		LinkedInURL:  in.LinkedInURL,
		Avatar:       avatar,
		Resume:       resume,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.users.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	session, err := a.tokens.Generate(saved.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", in.Email,
		"user_id", saved.ID)

	return saved, session, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password yield the same failure.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, string, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	if email == "" || password == "" {
		return model.User{}, "", apperr.NewValidation("email and password are required")
	}

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", apperr.NewInvalidCredentials()
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return model.User{}, "", apperr.NewInvalidCredentials()
	}

	session, err := a.tokens.Generate(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"email", email,
		"user_id", user.ID)

	return user, session, nil
}

// GetCurrentUser fetches the record behind a validated session.
func (a *Auth) GetCurrentUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperr.NewNotFound("user")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetPortfolioProfile returns the portfolio owner's public profile.
func (a *Auth) GetPortfolioProfile(ctx context.Context, ownerEmail string) (model.User, error) {
	user, err := a.users.GetByEmail(ctx, ownerEmail)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperr.NewNotFound("user")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get portfolio owner: %w", err)
	}

	return user, nil
}

// UpdateProfileInput carries profile fields for a partial update plus
// optional replacement attachments.
type UpdateProfileInput struct {
	Fields model.ProfileUpdate
	Avatar *model.FileUpload
	Resume *model.FileUpload
}

// UpdateProfile replaces only the supplied profile fields. A new
// attachment replaces the stored artifact; deleting the old one is
// best-effort.
func (a *Auth) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (model.User, error) {
	a.logger.Debug("Auth service: updating user profile",
		"user_id", userID)

	current, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apperr.NewNotFound("user")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	update := in.Fields

	if in.Avatar != nil {
		ref, err := a.replaceMedia(ctx, avatarFolder, current.Avatar, *in.Avatar)
		if err != nil {
			return model.User{}, apperr.NewUpload("failed to store avatar")
		}
		update.Avatar = &ref
	}

	if in.Resume != nil {
		ref, err := a.replaceMedia(ctx, resumeFolder, current.Resume, *in.Resume)
		if err != nil {
			return model.User{}, apperr.NewUpload("failed to store resume")
		}
		update.Resume = &ref
	}

	saved, err := a.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		a.logger.Error("Auth service: failed to update profile",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	a.logger.Info("Auth service: profile updated",
		"user_id", userID)

	return saved, nil
}

// replaceMedia deletes the previously stored artifact (failure is
// logged only) and stores the new one.
func (a *Auth) replaceMedia(ctx context.Context, folder string, old model.MediaRef, file model.FileUpload) (model.MediaRef, error) {
	if old.ID != "" {
		if err := a.media.Delete(ctx, old.ID); err != nil {
			a.logger.Error("Auth service: failed to delete old media artifact",
				"media_id", old.ID,
				"error", err.Error())
		}
	}

	ref, err := a.media.Upload(ctx, folder, file)
	if err != nil {
		a.logger.Error("Auth service: failed to upload media artifact",
			"folder", folder,
			"error", err.Error())
		return model.MediaRef{}, err
	}

	return ref, nil
}

// ChangePassword verifies the current secret and stores a new hash.
func (a *Auth) ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword, confirm string) error {
	a.logger.Debug("Auth service: changing password",
		"user_id", userID)

	switch {
	case current == "" || newPassword == "" || confirm == "":
		return apperr.NewValidation("current, new and confirm passwords are required")
	case newPassword != confirm:
		return apperr.NewValidation("new password and confirm password do not match")
	case len(newPassword) < minPasswordLength:
		return apperr.NewValidation("password must contain at least 8 characters")
	}

	user, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewNotFound("user")
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	if !a.hasher.Verify(current, user.PasswordHash) {
		return apperr.NewInvalidCredentials()
	}

	passwordHash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.users.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	a.logger.Info("Auth service: password changed",
		"user_id", userID)

	return nil
}

// RequestPasswordReset issues a reset token, persists its hash and
// mails the reset link. A failed send rolls the token state back.
func (a *Auth) RequestPasswordReset(ctx context.Context, email string) error {
	a.logger.Debug("Auth service: password reset requested",
		"email", email)

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewNotFound("user")
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	plain, hash, expiresAt, err := a.resetTokens.Issue()
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	if err := a.users.SetResetState(ctx, user.ID, model.PendingReset(hash, expiresAt)); err != nil {
		return fmt.Errorf("failed to persist reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/%s", a.resetURLBase, plain)
	body := fmt.Sprintf("Your password reset link is:\n\n%s\n\nIf you did not request this, please ignore this mail.", resetURL)

	if err := a.mailer.Send(ctx, user.Email, "Personal Portfolio Dashboard Password Recovery", body); err != nil {
		a.logger.Error("Auth service: failed to send reset mail",
			"email", email,
			"error", err.Error())
		// Clear the pending token so the user can re-request cleanly.
		if rbErr := a.users.SetResetState(ctx, user.ID, model.NoActiveReset()); rbErr != nil {
			a.logger.Error("Auth service: failed to roll back reset token",
				"user_id", user.ID,
				"error", rbErr.Error())
		}
		return apperr.NewMail("failed to send password reset mail")
	}

	a.logger.Info("Auth service: reset mail sent",
		"user_id", user.ID)

	return nil
}

// ConfirmPasswordReset consumes a reset token and stores a new
// password hash, issuing a fresh session token.
func (a *Auth) ConfirmPasswordReset(ctx context.Context, plainToken, newPassword, confirm string) (model.User, string, error) {
	a.logger.Debug("Auth service: confirming password reset")

	user, err := a.users.GetByResetHash(ctx, a.resetTokens.Hash(plainToken))
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", apperr.NewInvalidResetToken()
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by reset token: %w", err)
	}

	storedHash, storedExpiry, ok := user.Reset.Pending()
	if !ok || !a.resetTokens.Verify(plainToken, storedHash, storedExpiry) {
		return model.User{}, "", apperr.NewInvalidResetToken()
	}

	switch {
	case newPassword == "" || confirm == "":
		return model.User{}, "", apperr.NewValidation("new and confirm passwords are required")
	case newPassword != confirm:
		return model.User{}, "", apperr.NewValidation("new password and confirm password do not match")
	case len(newPassword) < minPasswordLength:
		return model.User{}, "", apperr.NewValidation("password must contain at least 8 characters")
	}

	passwordHash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	// Clears the reset pair in the same statement, making the token
	// single-use.
	if err := a.users.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return model.User{}, "", fmt.Errorf("failed to update password: %w", err)
	}

	session, err := a.tokens.Generate(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: password reset completed",
		"user_id", user.ID)

	return user, session, nil
}
