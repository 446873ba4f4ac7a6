package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/logger"
	"github.com/dtroode/portfolio-server/internal/model"
	"github.com/dtroode/portfolio-server/internal/service"
)

// ProjectService defines the project operations the endpoints depend on.
type ProjectService interface {
	Add(ctx context.Context, in service.ProjectInput) (model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (model.Project, error)
	GetAll(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in service.ProjectInput) (model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Project handles the project endpoints.
type Project struct {
	service ProjectService
	logger  *logger.Logger
}

// NewProject creates a new Project handler.
func NewProject(service ProjectService, logger *logger.Logger) *Project {
	return &Project{service: service, logger: logger}
}

type projectResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	GitRepoURL   string    `json:"gitRepoURL,omitempty"`
	ProjectURL   string    `json:"projectURL,omitempty"`
	Technologies string    `json:"technologies,omitempty"`
	Stack        string    `json:"stack,omitempty"`
	Deployed     string    `json:"deployed,omitempty"`
	BannerURL    string    `json:"bannerURL"`
}

func newProjectResponse(p model.Project) projectResponse {
	return projectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		GitRepoURL:   p.GitRepoURL,
		ProjectURL:   p.ProjectURL,
		Technologies: p.Technologies,
		Stack:        p.Stack,
		Deployed:     p.Deployed,
		BannerURL:    p.Banner.URL,
	}
}

func projectInputFromForm(r *http.Request) (service.ProjectInput, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return service.ProjectInput{}, apperr.NewValidation("malformed multipart body")
	}

	banner, err := fileFromForm(r, "projectBanner")
	if err != nil {
		return service.ProjectInput{}, err
	}

	return service.ProjectInput{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		GitRepoURL:   r.FormValue("gitRepoLink"),
		ProjectURL:   r.FormValue("projectLink"),
		Technologies: r.FormValue("technologies"),
		Stack:        r.FormValue("stack"),
		Deployed:     r.FormValue("deployed"),
		Banner:       banner,
	}, nil
}

// Add handles POST /project.
func (h *Project) Add(w http.ResponseWriter, r *http.Request) {
	in, err := projectInputFromForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	project, err := h.service.Add(r.Context(), in)
	if err != nil {
		h.logger.Error("Project handler: add failed",
			"title", in.Title,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"message": "project added",
		"project": newProjectResponse(project),
	})
}

// Get handles GET /project/{id}.
func (h *Project) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, apperr.NewValidation("invalid project id"))
		return
	}

	project, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"project": newProjectResponse(project),
	})
}

// GetAll handles GET /project.
func (h *Project) GetAll(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, newProjectResponse(p))
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"projects": responses,
	})
}

// Update handles PUT /project/{id}.
func (h *Project) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, apperr.NewValidation("invalid project id"))
		return
	}

	in, err := projectInputFromForm(r)
	if err != nil {
		writeError(w, err)
		return
	}

	project, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.logger.Error("Project handler: update failed",
			"project_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "project updated",
		"project": newProjectResponse(project),
	})
}

// Delete handles DELETE /project/{id}.
func (h *Project) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, apperr.NewValidation("invalid project id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("Project handler: delete failed",
			"project_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "project deleted",
	})
}
