package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/portfolio-server/internal/model"
)

var _ model.ApplicationStore = (*ApplicationRepository)(nil)

type ApplicationRepository struct {
	db *Connection
}

func NewApplicationRepository(db *Connection) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

const applicationColumns = `id, name, icon_id, icon_url, created_at`

func scanApplication(row pgx.Row) (model.SoftwareApplication, error) {
	var a model.SoftwareApplication
	err := row.Scan(&a.ID, &a.Name, &a.Icon.ID, &a.Icon.URL, &a.CreatedAt)
	return a, err
}

func (r *ApplicationRepository) Create(ctx context.Context, app model.SoftwareApplication) (model.SoftwareApplication, error) {
	query := fmt.Sprintf(`INSERT INTO software_applications (id, name, icon_id, icon_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, applicationColumns)

	saved, err := scanApplication(r.db.QueryRow(ctx, query,
		app.ID, app.Name, app.Icon.ID, app.Icon.URL, app.CreatedAt,
	))
	if err != nil {
		return model.SoftwareApplication{}, fmt.Errorf("failed to create software application: %w", err)
	}

	return saved, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (model.SoftwareApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM software_applications WHERE id = $1`, applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SoftwareApplication{}, model.ErrNotFound
		}
		return model.SoftwareApplication{}, fmt.Errorf("failed to get software application by id: %w", err)
	}

	return app, nil
}

func (r *ApplicationRepository) GetAll(ctx context.Context) ([]model.SoftwareApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM software_applications ORDER BY created_at DESC`, applicationColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list software applications: %w", err)
	}
	defer rows.Close()

	apps := []model.SoftwareApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan software application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM software_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete software application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
