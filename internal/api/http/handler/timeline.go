package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/logger"
	"github.com/dtroode/portfolio-server/internal/model"
)

// TimelineService defines the timeline operations the endpoints depend on.
type TimelineService interface {
	Add(ctx context.Context, title, description, from, to string) (model.TimelineEntry, error)
	GetAll(ctx context.Context) ([]model.TimelineEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Timeline handles the timeline endpoints.
type Timeline struct {
	service TimelineService
	logger  *logger.Logger
}

// NewTimeline creates a new Timeline handler.
func NewTimeline(service TimelineService, logger *logger.Logger) *Timeline {
	return &Timeline{service: service, logger: logger}
}

type timelineResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
}

func newTimelineResponse(e model.TimelineEntry) timelineResponse {
	return timelineResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		From:        e.From,
		To:          e.To,
	}
}

// Add handles POST /timeline.
func (h *Timeline) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		From        string `json:"from"`
		To          string `json:"to"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.service.Add(r.Context(), req.Title, req.Description, req.From, req.To)
	if err != nil {
		h.logger.Error("Timeline handler: add failed",
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"message":  "timeline entry added",
		"timeline": newTimelineResponse(entry),
	})
}

// GetAll handles GET /timeline.
func (h *Timeline) GetAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]timelineResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, newTimelineResponse(e))
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"timelines": responses,
	})
}

// Delete handles DELETE /timeline/{id}.
func (h *Timeline) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, apperr.NewValidation("invalid timeline id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("Timeline handler: delete failed",
			"timeline_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "timeline entry deleted",
	})
}
