package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/portfolio-server/internal/model"
)

var _ model.ProjectStore = (*ProjectRepository)(nil)

type ProjectRepository struct {
	db *Connection
}

func NewProjectRepository(db *Connection) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

const projectColumns = `id, title, description, git_repo_url, project_url,
	technologies, stack, deployed, banner_id, banner_url, created_at, updated_at`

func scanProject(row pgx.Row) (model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.GitRepoURL, &p.ProjectURL,
		&p.Technologies, &p.Stack, &p.Deployed, &p.Banner.ID, &p.Banner.URL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *ProjectRepository) Create(ctx context.Context, project model.Project) (model.Project, error) {
	query := fmt.Sprintf(`INSERT INTO projects (id, title, description, git_repo_url, project_url,
			technologies, stack, deployed, banner_id, banner_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s`, projectColumns)

	saved, err := scanProject(r.db.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.GitRepoURL, project.ProjectURL,
		project.Technologies, project.Stack, project.Deployed, project.Banner.ID, project.Banner.URL,
		project.CreatedAt, project.UpdatedAt,
	))
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return saved, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)

	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, model.ErrNotFound
		}
		return model.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}

	return project, nil
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]model.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects ORDER BY created_at DESC`, projectColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project model.Project) (model.Project, error) {
	query := fmt.Sprintf(`UPDATE projects
		SET title = $1, description = $2, git_repo_url = $3, project_url = $4,
			technologies = $5, stack = $6, deployed = $7, banner_id = $8, banner_url = $9,
			updated_at = $10
		WHERE id = $11
		RETURNING %s`, projectColumns)

	saved, err := scanProject(r.db.QueryRow(ctx, query,
		project.Title, project.Description, project.GitRepoURL, project.ProjectURL,
		project.Technologies, project.Stack, project.Deployed, project.Banner.ID, project.Banner.URL,
		project.UpdatedAt, project.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Project{}, model.ErrNotFound
		}
		return model.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	return saved, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
