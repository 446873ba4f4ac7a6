package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/portfolio-server/internal/model"
)

var _ model.SkillStore = (*SkillRepository)(nil)

type SkillRepository struct {
	db *Connection
}

func NewSkillRepository(db *Connection) *SkillRepository {
	return &SkillRepository{
		db: db,
	}
}

const skillColumns = `id, title, proficiency, icon_id, icon_url, created_at, updated_at`

func scanSkill(row pgx.Row) (model.Skill, error) {
	var s model.Skill
	err := row.Scan(&s.ID, &s.Title, &s.Proficiency, &s.Icon.ID, &s.Icon.URL, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *SkillRepository) Create(ctx context.Context, skill model.Skill) (model.Skill, error) {
	query := fmt.Sprintf(`INSERT INTO skills (id, title, proficiency, icon_id, icon_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, skillColumns)

	saved, err := scanSkill(r.db.QueryRow(ctx, query,
		skill.ID, skill.Title, skill.Proficiency, skill.Icon.ID, skill.Icon.URL,
		skill.CreatedAt, skill.UpdatedAt,
	))
	if err != nil {
		return model.Skill{}, fmt.Errorf("failed to create skill: %w", err)
	}

	return saved, nil
}

func (r *SkillRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills WHERE id = $1`, skillColumns)

	skill, err := scanSkill(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Skill{}, model.ErrNotFound
		}
		return model.Skill{}, fmt.Errorf("failed to get skill by id: %w", err)
	}

	return skill, nil
}

func (r *SkillRepository) GetAll(ctx context.Context) ([]model.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills ORDER BY created_at DESC`, skillColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, skill)
	}

	return skills, rows.Err()
}

func (r *SkillRepository) UpdateProficiency(ctx context.Context, id uuid.UUID, proficiency string) (model.Skill, error) {
	query := fmt.Sprintf(`UPDATE skills SET proficiency = $1, updated_at = $2 WHERE id = $3
		RETURNING %s`, skillColumns)

	skill, err := scanSkill(r.db.QueryRow(ctx, query, proficiency, time.Now(), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Skill{}, model.ErrNotFound
		}
		return model.Skill{}, fmt.Errorf("failed to update skill: %w", err)
	}

	return skill, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
