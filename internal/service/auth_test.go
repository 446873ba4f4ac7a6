package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/hasher"
	"github.com/dtroode/portfolio-server/internal/mocks"
	"github.com/dtroode/portfolio-server/internal/model"
	"github.com/dtroode/portfolio-server/internal/testutil"
)

func testFile(name string) *model.FileUpload {
	return &model.FileUpload{
		Name:        name,
		Size:        4,
		ContentType: "application/octet-stream",
		Data:        bytes.NewReader([]byte("data")),
	}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FullName:     "Jane Doe",
		Email:        "a@x.com",
		Phone:        "+100000000",
		AboutMe:      "software engineer",
		Password:     "pass1234",
		PortfolioURL: "https://jane.example.com",
		Avatar:       testFile("avatar.png"),
		Resume:       testFile("resume.pdf"),
	}
}

func newAuthForTest(
	users *mocks.UserStore,
	tokens *mocks.TokenManager,
	resetTokens *mocks.ResetTokenManager,
	media *mocks.MediaStorage,
	mailer *mocks.Mailer,
) *Auth {
	return NewAuth(users, hasher.NewBcrypt(), tokens, resetTokens, media, mailer,
		"http://localhost:5173/password/reset", testutil.MakeNoopLogger())
}

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}
	media := &mocks.MediaStorage{}

	users.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, model.ErrNotFound)
	media.On("Upload", mock.Anything, "avatars", mock.Anything).
		Return(model.MediaRef{ID: "avatars/a.png", URL: "http://media/avatars/a.png"}, nil)
	media.On("Upload", mock.Anything, "resumes", mock.Anything).
		Return(model.MediaRef{ID: "resumes/r.pdf", URL: "http://media/resumes/r.pdf"}, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		// Stored secret is a hash, never the plaintext.
		return u.PasswordHash != "pass1234" && u.PasswordHash != ""
	})).Return(model.User{
		ID:     uuid.New(),
		Email:  "a@x.com",
		Avatar: model.MediaRef{ID: "avatars/a.png", URL: "http://media/avatars/a.png"},
		Resume: model.MediaRef{ID: "resumes/r.pdf", URL: "http://media/resumes/r.pdf"},
	}, nil)
	tokens.On("Generate", mock.Anything).Return("session-token", nil)

	a := newAuthForTest(users, tokens, &mocks.ResetTokenManager{}, media, &mocks.Mailer{})

	user, session, err := a.Register(ctx, validRegisterInput())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "session-token", session)
	assert.Equal(t, "avatars/a.png", user.Avatar.ID)
	assert.Equal(t, "resumes/r.pdf", user.Resume.ID)
	users.AssertExpectations(t)
}

func TestAuth_Register_MissingFields(t *testing.T) {
	ctx := context.Background()
	a := newAuthForTest(&mocks.UserStore{}, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	tests := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing full name", func(in *RegisterInput) { in.FullName = "" }},
		{"missing email", func(in *RegisterInput) { in.Email = "" }},
		{"missing phone", func(in *RegisterInput) { in.Phone = "" }},
		{"missing about me", func(in *RegisterInput) { in.AboutMe = "" }},
		{"missing password", func(in *RegisterInput) { in.Password = "" }},
		{"short password", func(in *RegisterInput) { in.Password = "short" }},
		{"missing portfolio url", func(in *RegisterInput) { in.PortfolioURL = "" }},
		{"missing avatar", func(in *RegisterInput) { in.Avatar = nil }},
		{"missing resume", func(in *RegisterInput) { in.Resume = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegisterInput()
			tt.mutate(&in)

			_, _, err := a.Register(ctx, in)
			apiErr, ok := apperr.FromError(err)
			require.True(t, ok)
			assert.Equal(t, 400, apiErr.Status)
		})
	}
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	users.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{ID: uuid.New()}, nil)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	_, _, err := a.Register(ctx, validRegisterInput())
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 409, apiErr.Status)
}

func TestAuth_Register_UploadFailure_AbortsCreation(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	media := &mocks.MediaStorage{}

	users.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, model.ErrNotFound)
	media.On("Upload", mock.Anything, "avatars", mock.Anything).
		Return(model.MediaRef{ID: "avatars/a.png"}, nil)
	media.On("Upload", mock.Anything, "resumes", mock.Anything).
		Return(model.MediaRef{}, errors.New("storage down"))
	media.On("Delete", mock.Anything, "avatars/a.png").Return(nil)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, media, &mocks.Mailer{})

	_, _, err := a.Register(ctx, validRegisterInput())
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 502, apiErr.Status)

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	media.AssertCalled(t, "Delete", mock.Anything, "avatars/a.png")
}

func TestAuth_Login_InvalidCredentials_Indistinguishable(t *testing.T) {
	ctx := context.Background()
	h := hasher.NewBcrypt()
	storedHash, err := h.Hash("pass1234")
	require.NoError(t, err)

	users := &mocks.UserStore{}
	users.On("GetByEmail", mock.Anything, "a@x.com").
		Return(model.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: storedHash}, nil)
	users.On("GetByEmail", mock.Anything, "nobody@x.com").
		Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	_, _, wrongPassErr := a.Login(ctx, "a@x.com", "wrong")
	_, _, unknownErr := a.Login(ctx, "nobody@x.com", "pass1234")

	wrongPassAPI, ok := apperr.FromError(wrongPassErr)
	require.True(t, ok)
	unknownAPI, ok := apperr.FromError(unknownErr)
	require.True(t, ok)

	// Externally identical failures.
	assert.Equal(t, wrongPassAPI.Status, unknownAPI.Status)
	assert.Equal(t, wrongPassAPI.Message, unknownAPI.Message)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	h := hasher.NewBcrypt()
	storedHash, err := h.Hash("pass1234")
	require.NoError(t, err)

	userID := uuid.New()
	users := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}
	users.On("GetByEmail", mock.Anything, "a@x.com").
		Return(model.User{ID: userID, Email: "a@x.com", PasswordHash: storedHash}, nil)
	tokens.On("Generate", userID).Return("session-token", nil)

	a := newAuthForTest(users, tokens, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	user, session, err := a.Login(ctx, "a@x.com", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "session-token", session)
}

func TestAuth_ChangePassword_ConfirmMismatch(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	err := a.ChangePassword(ctx, uuid.New(), "pass1234", "newpass1", "different")
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)

	// Stored hash untouched.
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_ChangePassword_WrongCurrent(t *testing.T) {
	ctx := context.Background()
	h := hasher.NewBcrypt()
	storedHash, err := h.Hash("pass1234")
	require.NoError(t, err)

	userID := uuid.New()
	users := &mocks.UserStore{}
	users.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, PasswordHash: storedHash}, nil)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	err = a.ChangePassword(ctx, userID, "wrong", "newpass1", "newpass1")
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.Status)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_ChangePassword_Success(t *testing.T) {
	ctx := context.Background()
	h := hasher.NewBcrypt()
	storedHash, err := h.Hash("pass1234")
	require.NoError(t, err)

	userID := uuid.New()
	users := &mocks.UserStore{}
	users.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, PasswordHash: storedHash}, nil)
	users.On("UpdatePassword", mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
		return hash != "newpass12" && h.Verify("newpass12", hash)
	})).Return(nil)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	require.NoError(t, a.ChangePassword(ctx, userID, "pass1234", "newpass12", "newpass12"))
	users.AssertExpectations(t)
}

func TestAuth_RequestPasswordReset_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	users.On("GetByEmail", mock.Anything, "nobody@x.com").Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	err := a.RequestPasswordReset(ctx, "nobody@x.com")
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}

func TestAuth_RequestPasswordReset_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)

	users := &mocks.UserStore{}
	resetTokens := &mocks.ResetTokenManager{}
	mailer := &mocks.Mailer{}

	users.On("GetByEmail", mock.Anything, "a@x.com").
		Return(model.User{ID: userID, Email: "a@x.com"}, nil)
	resetTokens.On("Issue").Return("plain-token", "token-hash", expiresAt, nil)
	users.On("SetResetState", mock.Anything, userID, model.PendingReset("token-hash", expiresAt)).Return(nil)
	mailer.On("Send", mock.Anything, "a@x.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		// The plain token is embedded in the reset URL.
		return bytes.Contains([]byte(body), []byte("plain-token"))
	})).Return(nil)

	a := newAuthForTest(users, &mocks.TokenManager{}, resetTokens, &mocks.MediaStorage{}, mailer)

	require.NoError(t, a.RequestPasswordReset(ctx, "a@x.com"))
	users.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestAuth_RequestPasswordReset_MailFailure_RollsBack(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute)

	users := &mocks.UserStore{}
	resetTokens := &mocks.ResetTokenManager{}
	mailer := &mocks.Mailer{}

	users.On("GetByEmail", mock.Anything, "a@x.com").
		Return(model.User{ID: userID, Email: "a@x.com"}, nil)
	resetTokens.On("Issue").Return("plain-token", "token-hash", expiresAt, nil)
	users.On("SetResetState", mock.Anything, userID, model.PendingReset("token-hash", expiresAt)).Return(nil)
	mailer.On("Send", mock.Anything, "a@x.com", mock.Anything, mock.Anything).
		Return(errors.New("relay down"))
	users.On("SetResetState", mock.Anything, userID, model.NoActiveReset()).Return(nil)

	a := newAuthForTest(users, &mocks.TokenManager{}, resetTokens, &mocks.MediaStorage{}, mailer)

	err := a.RequestPasswordReset(ctx, "a@x.com")
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 502, apiErr.Status)

	users.AssertCalled(t, "SetResetState", mock.Anything, userID, model.NoActiveReset())
}

func TestAuth_ConfirmPasswordReset_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(10 * time.Minute)

	users := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}
	resetTokens := &mocks.ResetTokenManager{}

	resetTokens.On("Hash", "plain-token").Return("token-hash")
	users.On("GetByResetHash", mock.Anything, "token-hash").
		Return(model.User{ID: userID, Email: "a@x.com", Reset: model.PendingReset("token-hash", expiresAt)}, nil)
	resetTokens.On("Verify", "plain-token", "token-hash", expiresAt).Return(true)
	users.On("UpdatePassword", mock.Anything, userID, mock.Anything).Return(nil)
	tokens.On("Generate", userID).Return("fresh-session", nil)

	a := newAuthForTest(users, tokens, resetTokens, &mocks.MediaStorage{}, &mocks.Mailer{})

	user, session, err := a.ConfirmPasswordReset(ctx, "plain-token", "newpass12", "newpass12")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "fresh-session", session)
	users.AssertExpectations(t)
}

func TestAuth_ConfirmPasswordReset_UnknownToken(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}
	resetTokens := &mocks.ResetTokenManager{}

	resetTokens.On("Hash", "guess").Return("guess-hash")
	users.On("GetByResetHash", mock.Anything, "guess-hash").Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(users, &mocks.TokenManager{}, resetTokens, &mocks.MediaStorage{}, &mocks.Mailer{})

	_, _, err := a.ConfirmPasswordReset(ctx, "guess", "newpass12", "newpass12")
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "reset token is invalid or has expired", apiErr.Message)
}

func TestAuth_ConfirmPasswordReset_Expired(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	// Confirmed one minute past the validity window.
	expiresAt := time.Now().Add(-time.Minute)

	users := &mocks.UserStore{}
	resetTokens := &mocks.ResetTokenManager{}

	resetTokens.On("Hash", "plain-token").Return("token-hash")
	users.On("GetByResetHash", mock.Anything, "token-hash").
		Return(model.User{ID: userID, Reset: model.PendingReset("token-hash", expiresAt)}, nil)
	resetTokens.On("Verify", "plain-token", "token-hash", expiresAt).Return(false)

	a := newAuthForTest(users, &mocks.TokenManager{}, resetTokens, &mocks.MediaStorage{}, &mocks.Mailer{})

	_, _, err := a.ConfirmPasswordReset(ctx, "plain-token", "newpass12", "newpass12")
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "reset token is invalid or has expired", apiErr.Message)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_ConfirmPasswordReset_SingleUse(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(10 * time.Minute)

	users := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}
	resetTokens := &mocks.ResetTokenManager{}

	resetTokens.On("Hash", "plain-token").Return("token-hash")
	// First confirm finds the user; the update clears the pair, so the
	// second lookup misses.
	users.On("GetByResetHash", mock.Anything, "token-hash").
		Return(model.User{ID: userID, Reset: model.PendingReset("token-hash", expiresAt)}, nil).Once()
	resetTokens.On("Verify", "plain-token", "token-hash", expiresAt).Return(true)
	users.On("UpdatePassword", mock.Anything, userID, mock.Anything).Return(nil)
	tokens.On("Generate", userID).Return("fresh-session", nil)
	users.On("GetByResetHash", mock.Anything, "token-hash").
		Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(users, tokens, resetTokens, &mocks.MediaStorage{}, &mocks.Mailer{})

	_, _, err := a.ConfirmPasswordReset(ctx, "plain-token", "newpass12", "newpass12")
	require.NoError(t, err)

	_, _, err = a.ConfirmPasswordReset(ctx, "plain-token", "newpass12", "newpass12")
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "reset token is invalid or has expired", apiErr.Message)
}

func TestAuth_ConfirmPasswordReset_ConfirmMismatch(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(10 * time.Minute)

	users := &mocks.UserStore{}
	resetTokens := &mocks.ResetTokenManager{}

	resetTokens.On("Hash", "plain-token").Return("token-hash")
	users.On("GetByResetHash", mock.Anything, "token-hash").
		Return(model.User{ID: userID, Reset: model.PendingReset("token-hash", expiresAt)}, nil)
	resetTokens.On("Verify", "plain-token", "token-hash", expiresAt).Return(true)

	a := newAuthForTest(users, &mocks.TokenManager{}, resetTokens, &mocks.MediaStorage{}, &mocks.Mailer{})

	_, _, err := a.ConfirmPasswordReset(ctx, "plain-token", "newpass12", "different")
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.Status)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuth_UpdateProfile_ReplacesMedia(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	users := &mocks.UserStore{}
	media := &mocks.MediaStorage{}

	users.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Avatar: model.MediaRef{ID: "avatars/old.png"}}, nil)
	media.On("Delete", mock.Anything, "avatars/old.png").Return(nil)
	media.On("Upload", mock.Anything, "avatars", mock.Anything).
		Return(model.MediaRef{ID: "avatars/new.png", URL: "http://media/avatars/new.png"}, nil)
	users.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(u model.ProfileUpdate) bool {
		return u.Avatar != nil && u.Avatar.ID == "avatars/new.png"
	})).Return(model.User{ID: userID, Avatar: model.MediaRef{ID: "avatars/new.png"}}, nil)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, media, &mocks.Mailer{})

	user, err := a.UpdateProfile(ctx, userID, UpdateProfileInput{Avatar: testFile("new.png")})
	require.NoError(t, err)
	assert.Equal(t, "avatars/new.png", user.Avatar.ID)
	media.AssertExpectations(t)
}

func TestAuth_UpdateProfile_OldMediaDeleteFailure_NotFatal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	users := &mocks.UserStore{}
	media := &mocks.MediaStorage{}

	users.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Avatar: model.MediaRef{ID: "avatars/old.png"}}, nil)
	media.On("Delete", mock.Anything, "avatars/old.png").Return(errors.New("gone already"))
	media.On("Upload", mock.Anything, "avatars", mock.Anything).
		Return(model.MediaRef{ID: "avatars/new.png"}, nil)
	users.On("UpdateProfile", mock.Anything, userID, mock.Anything).
		Return(model.User{ID: userID}, nil)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, media, &mocks.Mailer{})

	_, err := a.UpdateProfile(ctx, userID, UpdateProfileInput{Avatar: testFile("new.png")})
	require.NoError(t, err)
}

func TestAuth_GetCurrentUser_NotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	users := &mocks.UserStore{}
	users.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(users, &mocks.TokenManager{}, &mocks.ResetTokenManager{}, &mocks.MediaStorage{}, &mocks.Mailer{})

	_, err := a.GetCurrentUser(ctx, userID)
	apiErr, ok := apperr.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
}
