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

const skillIconFolder = "skill-icons"

// Skill manages portfolio skill entries.
type Skill struct {
	store  model.SkillStore
	media  model.MediaStorage
	logger *logger.Logger
}

// NewSkill creates the skill service.
func NewSkill(store model.SkillStore, media model.MediaStorage, logger *logger.Logger) *Skill {
	return &Skill{store: store, media: media, logger: logger}
}

// Add stores a new skill with its icon.
func (s *Skill) Add(ctx context.Context, title, proficiency string, icon *model.FileUpload) (model.Skill, error) {
	if title == "" {
		return model.Skill{}, apperr.NewValidation("skill title is required")
	}
	if proficiency == "" {
		return model.Skill{}, apperr.NewValidation("skill proficiency is required")
	}
	if icon == nil {
		return model.Skill{}, apperr.NewValidation("skill icon is required")
	}

	ref, err := s.media.Upload(ctx, skillIconFolder, *icon)
	if err != nil {
		s.logger.Error("Skill service: failed to upload icon",
			"title", title,
			"error", err.Error())
		return model.Skill{}, apperr.NewUpload("failed to store skill icon")
	}

	now := time.Now()
	skill := model.Skill{
		ID:          uuid.New(),
		Title:       title,
		Proficiency: proficiency,
		Icon:        ref,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.store.Create(ctx, skill)
	if err != nil {
		return model.Skill{}, fmt.Errorf("failed to create skill: %w", err)
	}

	s.logger.Info("Skill service: skill added",
		"skill_id", saved.ID)

	return saved, nil
}

// GetAll lists all skills.
func (s *Skill) GetAll(ctx context.Context) ([]model.Skill, error) {
	skills, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	return skills, nil
}

// UpdateProficiency changes a skill's proficiency level.
func (s *Skill) UpdateProficiency(ctx context.Context, id uuid.UUID, proficiency string) (model.Skill, error) {
	if proficiency == "" {
		return model.Skill{}, apperr.NewValidation("skill proficiency is required")
	}

	skill, err := s.store.UpdateProficiency(ctx, id, proficiency)
	if errors.Is(err, model.ErrNotFound) {
		return model.Skill{}, apperr.NewNotFound("skill")
	}
	if err != nil {
		return model.Skill{}, fmt.Errorf("failed to update skill: %w", err)
	}

	return skill, nil
}

// Delete removes a skill and its stored icon (best-effort).
func (s *Skill) Delete(ctx context.Context, id uuid.UUID) error {
	skill, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewNotFound("skill")
	}
	if err != nil {
		return fmt.Errorf("failed to get skill: %w", err)
	}

	if skill.Icon.ID != "" {
		if err := s.media.Delete(ctx, skill.Icon.ID); err != nil {
			s.logger.Error("Skill service: failed to delete icon",
				"media_id", skill.Icon.ID,
				"error", err.Error())
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}

	s.logger.Info("Skill service: skill deleted",
		"skill_id", id)

	return nil
}
