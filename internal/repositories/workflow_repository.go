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

type WorkflowRepository struct {
	pool *pgxpool.Pool
}

func NewWorkflowRepository(pool *pgxpool.Pool) *WorkflowRepository {
	return &WorkflowRepository{pool: pool}
}

func (r *WorkflowRepository) Create(wf *models.Workflow) error {
	ctx := context.Background()

	wf.Prepare()

	query := `
		INSERT INTO workflows (id, organization_id, name, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		wf.ID,
		wf.OrganizationID,
		wf.Name,
		wf.IsDefault,
		time.Now(),
	)

	return err
}

func (r *WorkflowRepository) GetByID(id uuid.UUID) (*models.Workflow, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, name, is_default, created_at
		FROM workflows WHERE id = $1
	`

	var wf models.Workflow
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&wf.ID,
		&wf.OrganizationID,
		&wf.Name,
		&wf.IsDefault,
		&wf.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &wf, nil
}

func (r *WorkflowRepository) GetByOrgAndName(orgID uuid.UUID, name string) (*models.Workflow, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, name, is_default, created_at
		FROM workflows WHERE organization_id = $1 AND name = $2
	`

	var wf models.Workflow
	err := r.pool.QueryRow(ctx, query, orgID, name).Scan(
		&wf.ID,
		&wf.OrganizationID,
		&wf.Name,
		&wf.IsDefault,
		&wf.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &wf, nil
}

func (r *WorkflowRepository) GetDefaultByOrganization(orgID uuid.UUID) (*models.Workflow, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, name, is_default, created_at
		FROM workflows WHERE organization_id = $1 AND is_default = true
		LIMIT 1
	`

	var wf models.Workflow
	err := r.pool.QueryRow(ctx, query, orgID).Scan(
		&wf.ID,
		&wf.OrganizationID,
		&wf.Name,
		&wf.IsDefault,
		&wf.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &wf, nil
}

func (r *WorkflowRepository) ListByOrganization(orgID uuid.UUID) ([]models.Workflow, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, name, is_default, created_at
		FROM workflows WHERE organization_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workflows []models.Workflow
	for rows.Next() {
		var wf models.Workflow
		err := rows.Scan(&wf.ID, &wf.OrganizationID, &wf.Name, &wf.IsDefault, &wf.CreatedAt)
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, wf)
	}

	return workflows, rows.Err()
}

func (r *WorkflowRepository) CreateStatus(status *models.TaskStatus) error {
	ctx := context.Background()

	status.Prepare()

	query := `
		INSERT INTO task_statuses (id, workflow_id, name, category, position)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		status.ID,
		status.WorkflowID,
		status.Name,
		status.Category,
		status.Position,
	)

	return err
}

func (r *WorkflowRepository) GetStatusByID(id uuid.UUID) (*models.TaskStatus, error) {
	ctx := context.Background()

	query := `
		SELECT id, workflow_id, name, category, position
		FROM task_statuses WHERE id = $1
	`

	var s models.TaskStatus
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.WorkflowID, &s.Name, &s.Category, &s.Position)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

func (r *WorkflowRepository) GetStatusByName(workflowID uuid.UUID, name string) (*models.TaskStatus, error) {
	ctx := context.Background()

	query := `
		SELECT id, workflow_id, name, category, position
		FROM task_statuses WHERE workflow_id = $1 AND name = $2
	`

	var s models.TaskStatus
	err := r.pool.QueryRow(ctx, query, workflowID, name).Scan(&s.ID, &s.WorkflowID, &s.Name, &s.Category, &s.Position)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

// ListStatuses returns a workflow's statuses in board order.
func (r *WorkflowRepository) ListStatuses(workflowID uuid.UUID) ([]models.TaskStatus, error) {
	ctx := context.Background()

	query := `
		SELECT id, workflow_id, name, category, position
		FROM task_statuses WHERE workflow_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query, workflowID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []models.TaskStatus
	for rows.Next() {
		var s models.TaskStatus
		err := rows.Scan(&s.ID, &s.WorkflowID, &s.Name, &s.Category, &s.Position)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}

	return statuses, rows.Err()
}

func (r *WorkflowRepository) UpdateStatusPosition(id uuid.UUID, position int) error {
	ctx := context.Background()

	query := `UPDATE task_statuses SET position = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, position)
	return err
}
