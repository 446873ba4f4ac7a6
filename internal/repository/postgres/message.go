package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/portfolio-server/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

type MessageRepository struct {
	db *Connection
}

func NewMessageRepository(db *Connection) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

const messageColumns = `id, sender_name, subject, body, created_at`

func scanMessage(row pgx.Row) (model.Message, error) {
	var m model.Message
	err := row.Scan(&m.ID, &m.SenderName, &m.Subject, &m.Body, &m.CreatedAt)
	return m, err
}

func (r *MessageRepository) Create(ctx context.Context, message model.Message) (model.Message, error) {
	query := fmt.Sprintf(`INSERT INTO messages (id, sender_name, subject, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, messageColumns)

	saved, err := scanMessage(r.db.QueryRow(ctx, query,
		message.ID, message.SenderName, message.Subject, message.Body, message.CreatedAt,
	))
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	return saved, nil
}

func (r *MessageRepository) GetAll(ctx context.Context) ([]model.Message, error) {
	query := fmt.Sprintf(`SELECT %s FROM messages ORDER BY created_at DESC`, messageColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}

func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
