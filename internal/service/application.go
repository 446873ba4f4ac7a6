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

const applicationIconFolder = "application-icons"

// Application manages software application entries.
type Application struct {
	store  model.ApplicationStore
	media  model.MediaStorage
	logger *logger.Logger
}

// NewApplication creates the software application service.
func NewApplication(store model.ApplicationStore, media model.MediaStorage, logger *logger.Logger) *Application {
	return &Application{store: store, media: media, logger: logger}
}

// Add stores a new software application with its icon.
func (s *Application) Add(ctx context.Context, name string, icon *model.FileUpload) (model.SoftwareApplication, error) {
	if name == "" {
		return model.SoftwareApplication{}, apperr.NewValidation("software application name is required")
	}
	if icon == nil {
		return model.SoftwareApplication{}, apperr.NewValidation("software application icon is required")
	}

	ref, err := s.media.Upload(ctx, applicationIconFolder, *icon)
	if err != nil {
		s.logger.Error("Application service: failed to upload icon",
			"name", name,
			"error", err.Error())
		return model.SoftwareApplication{}, apperr.NewUpload("failed to store application icon")
	}

	app := model.SoftwareApplication{
		ID:        uuid.New(),
		Name:      name,
		Icon:      ref,
		CreatedAt: time.Now(),
	}

	saved, err := s.store.Create(ctx, app)
	if err != nil {
		return model.SoftwareApplication{}, fmt.Errorf("failed to create software application: %w", err)
	}

	s.logger.Info("Application service: application added",
		"application_id", saved.ID)

	return saved, nil
}

// GetAll lists all software applications.
func (s *Application) GetAll(ctx context.Context) ([]model.SoftwareApplication, error) {
	apps, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list software applications: %w", err)
	}

	return apps, nil
}

// Delete removes a software application and its icon (best-effort).
func (s *Application) Delete(ctx context.Context, id uuid.UUID) error {
	app, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewNotFound("software application")
	}
	if err != nil {
		return fmt.Errorf("failed to get software application: %w", err)
	}

	if app.Icon.ID != "" {
		if err := s.media.Delete(ctx, app.Icon.ID); err != nil {
			s.logger.Error("Application service: failed to delete icon",
				"media_id", app.Icon.ID,
				"error", err.Error())
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete software application: %w", err)
	}

	s.logger.Info("Application service: application deleted",
		"application_id", id)

	return nil
}
