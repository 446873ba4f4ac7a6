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

// Message manages contact-form messages.
type Message struct {
	store  model.MessageStore
	logger *logger.Logger
}

// NewMessage creates the message service.
func NewMessage(store model.MessageStore, logger *logger.Logger) *Message {
	return &Message{store: store, logger: logger}
}

// Add stores a message left through the public contact form.
func (s *Message) Add(ctx context.Context, senderName, subject, body string) (model.Message, error) {
	if senderName == "" || subject == "" || body == "" {
		return model.Message{}, apperr.NewValidation("please fill the full form")
	}

	message := model.Message{
		ID:         uuid.New(),
		SenderName: senderName,
		Subject:    subject,
		Body:       body,
		CreatedAt:  time.Now(),
	}

	saved, err := s.store.Create(ctx, message)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	s.logger.Info("Message service: message received",
		"message_id", saved.ID)

	return saved, nil
}

// GetAll lists all received messages.
func (s *Message) GetAll(ctx context.Context) ([]model.Message, error) {
	messages, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// Delete removes a message.
func (s *Message) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperr.NewNotFound("message")
	}
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.logger.Info("Message service: message deleted",
		"message_id", id)

	return nil
}
