package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SkillStore defines persistence operations for skills.
type SkillStore interface {
	Create(ctx context.Context, skill Skill) (Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (Skill, error)
	GetAll(ctx context.Context) ([]Skill, error)
	UpdateProficiency(ctx context.Context, id uuid.UUID, proficiency string) (Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Skill represents a named skill with a proficiency level and icon.
type Skill struct {
	ID          uuid.UUID
	Title       string
	Proficiency string
	Icon        MediaRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
