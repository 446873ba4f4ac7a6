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

const projectBannerFolder = "project-banners"

// Project manages portfolio project entries.
type Project struct {
	store  model.ProjectStore
	media  model.MediaStorage
	logger *logger.Logger
}

// NewProject creates the project service.
func NewProject(store model.ProjectStore, media model.MediaStorage, logger *logger.Logger) *Project {
	return &Project{store: store, media: media, logger: logger}
}

// ProjectInput carries project fields and an optional banner image.
type ProjectInput struct {
	Title        string
	Description  string
	GitRepoURL   string
	ProjectURL   string
	Technologies string
	Stack        string
	Deployed     string
	Banner       *model.FileUpload
}

// Add stores a new project with its banner.
func (s *Project) Add(ctx context.Context, in ProjectInput) (model.Project, error) {
	if in.Title == "" {
		return model.Project{}, apperr.NewValidation("project title is required")
	}
	if in.Banner == nil {
		return model.Project{}, apperr.NewValidation("project banner is required")
	}

	banner, err := s.media.Upload(ctx, projectBannerFolder, *in.Banner)
	if err != nil {
		s.logger.Error("Project service: failed to upload banner",
			"title", in.Title,
			"error", err.Error())
		return model.Project{}, apperr.NewUpload("failed to store project banner")
	}

	now := time.Now()
	project := model.Project{
		ID:           uuid.New(),
		Title:        in.Title,
		Description:  in.Description,
		GitRepoURL:   in.GitRepoURL,
		ProjectURL:   in.ProjectURL,
		Technologies: in.Technologies,
		Stack:        in.Stack,
		Deployed:     in.Deployed,
		Banner:       banner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := s.store.Create(ctx, project)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("Project service: project added",
		"project_id", saved.ID)

	return saved, nil
}

// Get returns a single project.
func (s *Project) Get(ctx context.Context, id uuid.UUID) (model.Project, error) {
	project, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Project{}, apperr.NewNotFound("project")
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

// GetAll lists all projects, newest first.
func (s *Project) GetAll(ctx context.Context) ([]model.Project, error) {
	projects, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

// Update replaces the supplied fields of an existing project. A new
// banner replaces the stored artifact; deleting the old one is
// best-effort.
func (s *Project) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (model.Project, error) {
	current, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Project{}, apperr.NewNotFound("project")
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	if in.Title != "" {
		current.Title = in.Title
	}
	if in.Description != "" {
		current.Description = in.Description
	}
	if in.GitRepoURL != "" {
		current.GitRepoURL = in.GitRepoURL
	}
	if in.ProjectURL != "" {
		current.ProjectURL = in.ProjectURL
	}
	if in.Technologies != "" {
		current.Technologies = in.Technologies
	}
	if in.Stack != "" {
		current.Stack = in.Stack
	}
	if in.Deployed != "" {
		current.Deployed = in.Deployed
	}

	if in.Banner != nil {
		if current.Banner.ID != "" {
			if err := s.media.Delete(ctx, current.Banner.ID); err != nil {
				s.logger.Error("Project service: failed to delete old banner",
					"media_id", current.Banner.ID,
					"error", err.Error())
			}
		}
		banner, err := s.media.Upload(ctx, projectBannerFolder, *in.Banner)
		if err != nil {
			return model.Project{}, apperr.NewUpload("failed to store project banner")
		}
		current.Banner = banner
	}

	current.UpdatedAt = time.Now()

	saved, err := s.store.Update(ctx, current)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	s.logger.Info("Project service: project updated",
		"project_id", saved.ID)

	return saved, nil
}

// Delete removes a project and its stored banner (best-effort).
func (s *Project) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewNotFound("project")
	}
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project.Banner.ID != "" {
		if err := s.media.Delete(ctx, project.Banner.ID); err != nil {
			s.logger.Error("Project service: failed to delete banner",
				"media_id", project.Banner.ID,
				"error", err.Error())
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Info("Project service: project deleted",
		"project_id", id)

	return nil
}
