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

// Timeline manages career/education timeline entries.
type Timeline struct {
	store  model.TimelineStore
	logger *logger.Logger
}

// NewTimeline creates the timeline service.
func NewTimeline(store model.TimelineStore, logger *logger.Logger) *Timeline {
	return &Timeline{store: store, logger: logger}
}

// Add stores a new timeline entry.
func (s *Timeline) Add(ctx context.Context, title, description, from, to string) (model.TimelineEntry, error) {
	if title == "" {
		return model.TimelineEntry{}, apperr.NewValidation("timeline title is required")
	}
	if description == "" {
		return model.TimelineEntry{}, apperr.NewValidation("timeline description is required")
	}

	entry := model.TimelineEntry{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		From:        from,
		To:          to,
		CreatedAt:   time.Now(),
	}

	saved, err := s.store.Create(ctx, entry)
	if err != nil {
		return model.TimelineEntry{}, fmt.Errorf("failed to create timeline entry: %w", err)
	}

	s.logger.Info("Timeline service: entry added",
		"timeline_id", saved.ID)

	return saved, nil
}

// GetAll lists all timeline entries.
func (s *Timeline) GetAll(ctx context.Context) ([]model.TimelineEntry, error) {
	entries, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline entries: %w", err)
	}

	return entries, nil
}

// Delete removes a timeline entry.
func (s *Timeline) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewNotFound("timeline entry")
	}
	if err != nil {
		return fmt.Errorf("failed to delete timeline entry: %w", err)
	}

	s.logger.Info("Timeline service: entry deleted",
		"timeline_id", id)

	return nil
}
