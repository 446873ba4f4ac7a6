package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/portfolio-server/internal/api/http/middleware"
	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/logger"
	"github.com/dtroode/portfolio-server/internal/model"
	"github.com/dtroode/portfolio-server/internal/service"
)

// sessionCookie is the cookie carrying the session token for browser
// clients; API clients may send the same token as a bearer header.
const sessionCookie = "session"

// AuthService defines the credential-lifecycle operations the user
// endpoints depend on.
type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (model.User, string, error)
	Login(ctx context.Context, email, password string) (model.User, string, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (model.User, error)
	GetPortfolioProfile(ctx context.Context, ownerEmail string) (model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in service.UpdateProfileInput) (model.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, current, newPassword, confirm string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, plainToken, newPassword, confirm string) (model.User, string, error)
}

// Auth handles the user endpoints.
type Auth struct {
	service    AuthService
	ownerEmail string
	sessionTTL time.Duration
	logger     *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(service AuthService, ownerEmail string, sessionTTL time.Duration, logger *logger.Logger) *Auth {
	return &Auth{
		service:    service,
		ownerEmail: ownerEmail,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

type userResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	AboutMe      string    `json:"aboutMe"`
	PortfolioURL string    `json:"portfolioURL"`
	GithubURL    string    `json:"githubURL,omitempty"`
	InstagramURL string    `json:"instagramURL,omitempty"`
	TwitterURL   string    `json:"twitterURL,omitempty"`
	FacebookURL  string    `json:"facebookURL,omitempty"`
	LinkedInURL  string    `json:"linkedInURL,omitempty"`
	AvatarURL    string    `json:"avatarURL"`
	ResumeURL    string    `json:"resumeURL"`
}

// newUserResponse renders a user for the API. The password hash and
// reset state never leave the service boundary.
func newUserResponse(u model.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Phone:        u.Phone,
		AboutMe:      u.AboutMe,
		PortfolioURL: u.PortfolioURL,
		GithubURL:    u.GithubURL,
		InstagramURL: u.InstagramURL,
		TwitterURL:   u.TwitterURL,
		FacebookURL:  u.FacebookURL,
		LinkedInURL:  u.LinkedInURL,
		AvatarURL:    u.Avatar.URL,
		ResumeURL:    u.Resume.URL,
	}
}

func (h *Auth) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Auth) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register handles POST /user/register with a multipart body carrying
// profile fields plus avatar and resume files.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, apperr.NewValidation("avatar and resume are required"))
		return
	}

	avatar, err := fileFromForm(r, "avatar")
	if err != nil {
		writeError(w, err)
		return
	}
	resume, err := fileFromForm(r, "resume")
	if err != nil {
		writeError(w, err)
		return
	}

	in := service.RegisterInput{
		FullName:     r.FormValue("fullName"),
		Email:        r.FormValue("email"),
		Phone:        r.FormValue("phone"),
		AboutMe:      r.FormValue("aboutMe"),
		Password:     r.FormValue("password"),
		PortfolioURL: r.FormValue("portfolioURL"),
		GithubURL:    r.FormValue("githubURL"),
		InstagramURL: r.FormValue("instagramURL"),
		TwitterURL:   r.FormValue("twitterURL"),
		FacebookURL:  r.FormValue("facebookURL"),
		LinkedInURL:  r.FormValue("linkedInURL"),
		Avatar:       avatar,
		Resume:       resume,
	}

	user, session, err := h.service.Register(r.Context(), in)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", in.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	writeSuccess(w, http.StatusCreated, map[string]any{
		"message": "user registered",
		"user":    newUserResponse(user),
		"token":   session,
	})
}

// Login handles POST /user/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "logged in",
		"user":    newUserResponse(user),
		"token":   session,
	})
}

// Logout handles GET /user/logout. Session tokens are stateless, so
// logout just clears the cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "logged out",
	})
}

// Me handles GET /user/me.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, apperr.NewUnauthenticated("missing session"))
		return
	}

	user, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"user": newUserResponse(user),
	})
}

// Portfolio handles GET /user/portfolio, the unauthenticated public
// profile of the portfolio owner.
func (h *Auth) Portfolio(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetPortfolioProfile(r.Context(), h.ownerEmail)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"user": newUserResponse(user),
	})
}

// UpdateProfile handles PUT /user/me with a multipart body; only the
// supplied fields and files are replaced.
func (h *Auth) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, apperr.NewUnauthenticated("missing session"))
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, apperr.NewValidation("malformed multipart body"))
		return
	}

	avatar, err := fileFromForm(r, "avatar")
	if err != nil {
		writeError(w, err)
		return
	}
	resume, err := fileFromForm(r, "resume")
	if err != nil {
		writeError(w, err)
		return
	}

	in := service.UpdateProfileInput{
		Fields: model.ProfileUpdate{
			FullName:     optionalField(r, "fullName"),
			Email:        optionalField(r, "email"),
			Phone:        optionalField(r, "phone"),
			AboutMe:      optionalField(r, "aboutMe"),
			PortfolioURL: optionalField(r, "portfolioURL"),
			GithubURL:    optionalField(r, "githubURL"),
			InstagramURL: optionalField(r, "instagramURL"),
			TwitterURL:   optionalField(r, "twitterURL"),
			FacebookURL:  optionalField(r, "facebookURL"),
			LinkedInURL:  optionalField(r, "linkedInURL"),
		},
		Avatar: avatar,
		Resume: resume,
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, in)
	if err != nil {
		h.logger.Error("Auth handler: profile update failed",
			"user_id", userID,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "profile updated",
		"user":    newUserResponse(user),
	})
}

// optionalField returns a pointer to the form value only when the
// field was present in the request, distinguishing "unset" from "set
// to empty".
func optionalField(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// ChangePassword handles PUT /user/password.
func (h *Auth) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, apperr.NewUnauthenticated("missing session"))
		return
	}

	var req struct {
		CurrentPassword    string `json:"currentPassword"`
		NewPassword        string `json:"newPassword"`
		ConfirmNewPassword string `json:"confirmNewPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword, req.ConfirmNewPassword); err != nil {
		h.logger.Error("Auth handler: password change failed",
			"user_id", userID,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "password updated",
	})
}

// ForgotPassword handles POST /user/password/forgot.
func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.logger.Error("Auth handler: password reset request failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "password reset mail sent",
	})
}

// ResetPassword handles PUT /user/password/reset/{token}.
func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	var req struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, session, err := h.service.ConfirmPasswordReset(r.Context(), token, req.Password, req.ConfirmPassword)
	if err != nil {
		h.logger.Error("Auth handler: password reset failed",
			"error", err.Error())
		writeError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "password reset successfully",
		"user":    newUserResponse(user),
		"token":   session,
	})
}
