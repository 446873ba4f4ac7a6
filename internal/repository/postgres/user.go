package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/portfolio-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, email, password_hash, full_name, phone, about_me,
	portfolio_url, github_url, instagram_url, twitter_url, facebook_url, linkedin_url,
	avatar_id, avatar_url, resume_id, resume_url,
	reset_token_hash, reset_token_expires_at, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var (
		user        model.User
		resetHash   *string
		resetExpiry *time.Time
	)

	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone, &user.AboutMe,
		&user.PortfolioURL, &user.GithubURL, &user.InstagramURL, &user.TwitterURL,
		&user.FacebookURL, &user.LinkedInURL,
		&user.Avatar.ID, &user.Avatar.URL, &user.Resume.ID, &user.Resume.URL,
		&resetHash, &resetExpiry, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}

	if resetHash != nil && resetExpiry != nil {
		user.Reset = model.PendingReset(*resetHash, *resetExpiry)
	} else {
		user.Reset = model.NoActiveReset()
	}

	return user, nil
}

func (r *UserRepository) getBy(ctx context.Context, condition string, arg any) (model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s`, userColumns, condition)

	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *UserRepository) GetByResetHash(ctx context.Context, hash string) (model.User, error) {
	return r.getBy(ctx, "reset_token_hash = $1", hash)
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := fmt.Sprintf(`INSERT INTO users (id, email, password_hash, full_name, phone, about_me,
			portfolio_url, github_url, instagram_url, twitter_url, facebook_url, linkedin_url,
			avatar_id, avatar_url, resume_id, resume_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING %s`, userColumns)

	savedUser, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Phone, user.AboutMe,
		user.PortfolioURL, user.GithubURL, user.InstagramURL, user.TwitterURL,
		user.FacebookURL, user.LinkedInURL,
		user.Avatar.ID, user.Avatar.URL, user.Resume.ID, user.Resume.URL,
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (model.User, error) {
	set := make([]string, 0, 13)
	args := make([]any, 0, 14)

	appendField := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	appendField("full_name", update.FullName)
	appendField("email", update.Email)
	appendField("phone", update.Phone)
	appendField("about_me", update.AboutMe)
	appendField("portfolio_url", update.PortfolioURL)
	appendField("github_url", update.GithubURL)
	appendField("instagram_url", update.InstagramURL)
	appendField("twitter_url", update.TwitterURL)
	appendField("facebook_url", update.FacebookURL)
	appendField("linkedin_url", update.LinkedInURL)

	if update.Avatar != nil {
		args = append(args, update.Avatar.ID, update.Avatar.URL)
		set = append(set, fmt.Sprintf("avatar_id = $%d, avatar_url = $%d", len(args)-1, len(args)))
	}
	if update.Resume != nil {
		args = append(args, update.Resume.ID, update.Resume.URL)
		set = append(set, fmt.Sprintf("resume_id = $%d, resume_url = $%d", len(args)-1, len(args)))
	}

	args = append(args, time.Now())
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user profile: %w", err)
	}

	return user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users
			  SET password_hash = $1, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = $2
			  WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) SetResetState(ctx context.Context, id uuid.UUID, state model.ResetState) error {
	var (
		hash   *string
		expiry *time.Time
	)
	if h, exp, ok := state.Pending(); ok {
		hash, expiry = &h, &exp
	}

	query := `UPDATE users
			  SET reset_token_hash = $1, reset_token_expires_at = $2, updated_at = $3
			  WHERE id = $4`

	tag, err := r.db.Exec(ctx, query, hash, expiry, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set reset state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
