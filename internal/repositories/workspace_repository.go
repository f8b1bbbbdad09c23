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

type WorkspaceRepository struct {
	pool *pgxpool.Pool
}

func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepository {
	return &WorkspaceRepository{pool: pool}
}

func (r *WorkspaceRepository) Create(ws *models.Workspace) error {
	ctx := context.Background()

	ws.Prepare()

	query := `
		INSERT INTO workspaces (id, organization_id, name, slug, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		ws.ID,
		ws.OrganizationID,
		ws.Name,
		ws.Slug,
		ws.Description,
		time.Now(),
	)

	return err
}

func (r *WorkspaceRepository) GetByID(id uuid.UUID) (*models.Workspace, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, name, slug, description, created_at
		FROM workspaces WHERE id = $1
	`

	var ws models.Workspace
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ws.ID,
		&ws.OrganizationID,
		&ws.Name,
		&ws.Slug,
		&ws.Description,
		&ws.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &ws, nil
}

func (r *WorkspaceRepository) GetByOrgAndSlug(orgID uuid.UUID, slug string) (*models.Workspace, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, name, slug, description, created_at
		FROM workspaces WHERE organization_id = $1 AND slug = $2
	`

	var ws models.Workspace
	err := r.pool.QueryRow(ctx, query, orgID, slug).Scan(
		&ws.ID,
		&ws.OrganizationID,
		&ws.Name,
		&ws.Slug,
		&ws.Description,
		&ws.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &ws, nil
}

func (r *WorkspaceRepository) ListByOrganization(orgID uuid.UUID) ([]models.Workspace, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, name, slug, description, created_at
		FROM workspaces WHERE organization_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workspaces []models.Workspace
	for rows.Next() {
		var ws models.Workspace
		err := rows.Scan(&ws.ID, &ws.OrganizationID, &ws.Name, &ws.Slug, &ws.Description, &ws.CreatedAt)
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, ws)
	}

	return workspaces, rows.Err()
}

func (r *WorkspaceRepository) Update(ws *models.Workspace) error {
	ctx := context.Background()

	query := `UPDATE workspaces SET name = $2, description = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, ws.ID, ws.Name, ws.Description)
	return err
}

func (r *WorkspaceRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM workspaces WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *WorkspaceRepository) AddMember(member *models.WorkspaceMember) error {
	ctx := context.Background()

	member.Prepare()

	query := `
		INSERT INTO workspace_members (id, workspace_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		member.ID,
		member.WorkspaceID,
		member.UserID,
		member.Role,
		time.Now(),
	)

	return err
}

func (r *WorkspaceRepository) GetMember(workspaceID, userID uuid.UUID) (*models.WorkspaceMember, error) {
	ctx := context.Background()

	query := `
		SELECT id, workspace_id, user_id, role, created_at
		FROM workspace_members
		WHERE workspace_id = $1 AND user_id = $2
	`

	var m models.WorkspaceMember
	err := r.pool.QueryRow(ctx, query, workspaceID, userID).Scan(
		&m.ID,
		&m.WorkspaceID,
		&m.UserID,
		&m.Role,
		&m.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &m, nil
}

func (r *WorkspaceRepository) ListMembers(workspaceID uuid.UUID) ([]models.WorkspaceMember, error) {
	ctx := context.Background()

	query := `
		SELECT id, workspace_id, user_id, role, created_at
		FROM workspace_members
		WHERE workspace_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.WorkspaceMember
	for rows.Next() {
		var m models.WorkspaceMember
		err := rows.Scan(&m.ID, &m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}
