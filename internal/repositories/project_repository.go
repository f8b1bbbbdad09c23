package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planhub/planhub/internal/models"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(project *models.Project) error {
	ctx := context.Background()

	project.Prepare()

	query := `
		INSERT INTO projects (id, workspace_id, workflow_id, name, slug, description, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.WorkspaceID,
		project.WorkflowID,
		project.Name,
		project.Slug,
		project.Description,
		project.StartDate,
		project.EndDate,
		time.Now(),
	)

	return err
}

func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	ctx := context.Background()

	query := `
		SELECT id, workspace_id, workflow_id, name, slug, description, start_date, end_date, created_at
		FROM projects WHERE id = $1
	`

	var project models.Project
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.WorkspaceID,
		&project.WorkflowID,
		&project.Name,
		&project.Slug,
		&project.Description,
		&project.StartDate,
		&project.EndDate,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetByWorkspaceAndSlug(workspaceID uuid.UUID, slug string) (*models.Project, error) {
	ctx := context.Background()

	query := `
		SELECT id, workspace_id, workflow_id, name, slug, description, start_date, end_date, created_at
		FROM projects WHERE workspace_id = $1 AND slug = $2
	`

	var project models.Project
	err := r.pool.QueryRow(ctx, query, workspaceID, slug).Scan(
		&project.ID,
		&project.WorkspaceID,
		&project.WorkflowID,
		&project.Name,
		&project.Slug,
		&project.Description,
		&project.StartDate,
		&project.EndDate,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) ListByWorkspace(workspaceID uuid.UUID) ([]models.Project, error) {
	ctx := context.Background()

	query := `
		SELECT id, workspace_id, workflow_id, name, slug, description, start_date, end_date, created_at
		FROM projects WHERE workspace_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.WorkspaceID,
			&project.WorkflowID,
			&project.Name,
			&project.Slug,
			&project.Description,
			&project.StartDate,
			&project.EndDate,
			&project.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) Update(project *models.Project) error {
	ctx := context.Background()

	query := `
		UPDATE projects SET
			name = $2, description = $3, start_date = $4, end_date = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.StartDate,
		project.EndDate,
	)

	return err
}

func (r *ProjectRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM projects WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
