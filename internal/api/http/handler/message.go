package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/portfolio-server/internal/apperr"
	"github.com/dtroode/portfolio-server/internal/logger"
	"github.com/dtroode/portfolio-server/internal/model"
)

// MessageService defines the contact-message operations the endpoints
// depend on.
type MessageService interface {
	Add(ctx context.Context, senderName, subject, body string) (model.Message, error)
	GetAll(ctx context.Context) ([]model.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Message handles the contact-message endpoints.
type Message struct {
	service MessageService
	logger  *logger.Logger
}

// NewMessage creates a new Message handler.
func NewMessage(service MessageService, logger *logger.Logger) *Message {
	return &Message{service: service, logger: logger}
}

type messageResponse struct {
	ID         uuid.UUID `json:"id"`
	SenderName string    `json:"senderName"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newMessageResponse(m model.Message) messageResponse {
	return messageResponse{
		ID:         m.ID,
		SenderName: m.SenderName,
		Subject:    m.Subject,
		Message:    m.Body,
		CreatedAt:  m.CreatedAt,
	}
}

// Add handles POST /message, the public contact form.
func (h *Message) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SenderName string `json:"senderName"`
		Subject    string `json:"subject"`
		Message    string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	message, err := h.service.Add(r.Context(), req.SenderName, req.Subject, req.Message)
	if err != nil {
		h.logger.Error("Message handler: add failed",
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"message": "message sent",
		"data":    newMessageResponse(message),
	})
}

// GetAll handles GET /message.
func (h *Message) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	responses := make([]messageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, newMessageResponse(m))
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"messages": responses,
	})
}

// Delete handles DELETE /message/{id}.
func (h *Message) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, apperr.NewValidation("invalid message id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("Message handler: delete failed",
			"message_id", id,
			"error", err.Error())
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"message": "message deleted",
	})
}
