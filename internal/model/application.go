package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ApplicationStore defines persistence operations for software
// applications shown on the portfolio.
type ApplicationStore interface {
	Create(ctx context.Context, app SoftwareApplication) (SoftwareApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (SoftwareApplication, error)
	GetAll(ctx context.Context) ([]SoftwareApplication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SoftwareApplication represents a tool/application with its icon.
type SoftwareApplication struct {
	ID        uuid.UUID
	Name      string
	Icon      MediaRef
	CreatedAt time.Time
}
