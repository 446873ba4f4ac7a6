package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProjectStore defines persistence operations for projects.
type ProjectStore interface {
	Create(ctx context.Context, project Project) (Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	GetAll(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, project Project) (Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Project represents a portfolio project entry.
type Project struct {
	ID           uuid.UUID
	Title        string
	Description  string
	GitRepoURL   string
	ProjectURL   string
	Technologies string
	Stack        string
	Deployed     string
	Banner       MediaRef
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
