package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/logger"
	"github.com/dtroode/portfolio-server/internal/model"
)

// ApplicationService defines the software-application operations the
// endpoints depend on.
type ApplicationService interface {
	Add(ctx context.Context, name string, icon *model.FileUpload) (model.SoftwareApplication, error)
	GetAll(ctx context.Context) ([]model.SoftwareApplication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Application handles the software-application endpoints.
type Application struct {
	service ApplicationService
	logger  *logger.Logger
}

// NewApplication creates a new Application handler.
func NewApplication(service ApplicationService, logger *logger.Logger) *Application {
	return &Application{service: service, logger: logger}
}

type applicationResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	IconURL string    `json:"iconURL"`
}

func newApplicationResponse(a model.SoftwareApplication) applicationResponse {
	return applicationResponse{
		ID:      a.ID,
		Name:    a.Name,
		IconURL: a.Icon.URL,
	}
}

// Add handles POST /softwareapplication.
func (h *Application) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, apperr.NewValidation("malformed multipart body"))
		return
	}

	icon, err := fileFromForm(r, "svg")
	if err != nil {
		writeError(w, err)
		return
	}

	app, err := h.service.Add(r.Context(), r.FormValue("name"), icon)
	if err != nil {
		h.logger.Error("Application handler: add failed",
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"message":             "software application added",
		"softwareApplication": newApplicationResponse(app),
	})
}

// GetAll handles GET /softwareapplication.
func (h *Application) GetAll(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		responses = append(responses, newApplicationResponse(a))
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"softwareApplications": responses,
	})
}

// Delete handles DELETE /softwareapplication/{id}.
func (h *Application) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, apperr.NewValidation("invalid software application id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("Application handler: delete failed",
			"application_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "software application deleted",
	})
}
