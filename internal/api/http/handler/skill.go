package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/logger"
	"github.com/dtroode/portfolio-server/internal/model"
)

// SkillService defines the skill operations the endpoints depend on.
type SkillService interface {
	Add(ctx context.Context, title, proficiency string, icon *model.FileUpload) (model.Skill, error)
	GetAll(ctx context.Context) ([]model.Skill, error)
	UpdateProficiency(ctx context.Context, id uuid.UUID, proficiency string) (model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Skill handles the skill endpoints.
type Skill struct {
	service SkillService
	logger  *logger.Logger
}

// NewSkill creates a new Skill handler.
func NewSkill(service SkillService, logger *logger.Logger) *Skill {
	return &Skill{service: service, logger: logger}
}

type skillResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Proficiency string    `json:"proficiency"`
	IconURL     string    `json:"iconURL"`
}

func newSkillResponse(s model.Skill) skillResponse {
	return skillResponse{
		ID:          s.ID,
		Title:       s.Title,
		Proficiency: s.Proficiency,
		IconURL:     s.Icon.URL,
	}
}

// Add handles POST /skill.
func (h *Skill) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, apperr.NewValidation("malformed multipart body"))
		return
	}

	icon, err := fileFromForm(r, "svg")
	if err != nil {
		writeError(w, err)
		return
	}

	skill, err := h.service.Add(r.Context(), r.FormValue("title"), r.FormValue("proficiency"), icon)
	if err != nil {
		h.logger.Error("Skill handler: add failed",
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"message": "skill added",
		"skill":   newSkillResponse(skill),
	})
}

// GetAll handles GET /skill.
func (h *Skill) GetAll(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]skillResponse, 0, len(skills))
	for _, s := range skills {
		responses = append(responses, newSkillResponse(s))
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"skills": responses,
	})
}

// Update handles PUT /skill/{id}.
func (h *Skill) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, apperr.NewValidation("invalid skill id"))
		return
	}

	var req struct {
		Proficiency string `json:"proficiency"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	skill, err := h.service.UpdateProficiency(r.Context(), id, req.Proficiency)
	if err != nil {
		h.logger.Error("Skill handler: update failed",
			"skill_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "skill updated",
		"skill":   newSkillResponse(skill),
	})
}

// Delete handles DELETE /skill/{id}.
func (h *Skill) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, apperr.NewValidation("invalid skill id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("Skill handler: delete failed",
			"skill_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "skill deleted",
	})
}
