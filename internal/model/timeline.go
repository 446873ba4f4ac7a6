package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TimelineStore defines persistence operations for timeline entries.
type TimelineStore interface {
	Create(ctx context.Context, entry TimelineEntry) (TimelineEntry, error)
	GetAll(ctx context.Context) ([]TimelineEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TimelineEntry represents a career/education timeline item.
type TimelineEntry struct {
	ID          uuid.UUID
	Title       string
	Description string
	From        string
	To          string
	CreatedAt   time.Time
}
