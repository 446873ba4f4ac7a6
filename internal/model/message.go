package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MessageStore defines persistence operations for contact messages.
type MessageStore interface {
	Create(ctx context.Context, message Message) (Message, error)
	GetAll(ctx context.Context) ([]Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Message represents a message left through the contact form.
type Message struct {
	ID         uuid.UUID
	SenderName string
	Subject    string
	Body       string
	CreatedAt  time.Time
}
