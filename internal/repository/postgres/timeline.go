package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/portfolio-server/internal/model"
)

var _ model.TimelineStore = (*TimelineRepository)(nil)

type TimelineRepository struct {
	db *Connection
}

func NewTimelineRepository(db *Connection) *TimelineRepository {
	return &TimelineRepository{
		db: db,
	}
}

const timelineColumns = `id, title, description, time_from, time_to, created_at`

func scanTimelineEntry(row pgx.Row) (model.TimelineEntry, error) {
	var e model.TimelineEntry
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.From, &e.To, &e.CreatedAt)
	return e, err
}

func (r *TimelineRepository) Create(ctx context.Context, entry model.TimelineEntry) (model.TimelineEntry, error) {
	query := fmt.Sprintf(`INSERT INTO timeline_entries (id, title, description, time_from, time_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, timelineColumns)

	saved, err := scanTimelineEntry(r.db.QueryRow(ctx, query,
		entry.ID, entry.Title, entry.Description, entry.From, entry.To, entry.CreatedAt,
	))
	if err != nil {
		return model.TimelineEntry{}, fmt.Errorf("failed to create timeline entry: %w", err)
	}

	return saved, nil
}

func (r *TimelineRepository) GetAll(ctx context.Context) ([]model.TimelineEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM timeline_entries ORDER BY created_at DESC`, timelineColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline entries: %w", err)
	}
	defer rows.Close()

	entries := []model.TimelineEntry{}
	for rows.Next() {
		entry, err := scanTimelineEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *TimelineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM timeline_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete timeline entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
