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

type OrganizationRepository struct {
	pool *pgxpool.Pool
}

func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{pool: pool}
}

func (r *OrganizationRepository) Create(org *models.Organization) error {
	ctx := context.Background()

	org.Prepare()

	query := `
		INSERT INTO organizations (id, name, slug, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		org.ID,
		org.Name,
		org.Slug,
		org.Description,
		time.Now(),
	)

	return err
}

func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, slug, description, created_at
		FROM organizations WHERE id = $1
	`

	var org models.Organization
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&org.Description,
		&org.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &org, nil
}

func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	ctx := context.Background()

	query := `
		SELECT id, name, slug, description, created_at
		FROM organizations WHERE slug = $1
	`

	var org models.Organization
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&org.Description,
		&org.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &org, nil
}

// ListByUserID returns the organizations the user is a member of.
func (r *OrganizationRepository) ListByUserID(userID uuid.UUID) ([]models.Organization, error) {
	ctx := context.Background()

	query := `
		SELECT o.id, o.name, o.slug, o.description, o.created_at
		FROM organizations o
		JOIN organization_members m ON m.organization_id = o.id
		WHERE m.user_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []models.Organization
	for rows.Next() {
		var org models.Organization
		err := rows.Scan(
			&org.ID,
			&org.Name,
			&org.Slug,
			&org.Description,
			&org.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

func (r *OrganizationRepository) Update(org *models.Organization) error {
	ctx := context.Background()

	query := `UPDATE organizations SET name = $2, description = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, org.ID, org.Name, org.Description)
	return err
}

func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM organizations WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *OrganizationRepository) AddMember(member *models.OrganizationMember) error {
	ctx := context.Background()

	member.Prepare()

	query := `
		INSERT INTO organization_members (id, organization_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		member.ID,
		member.OrganizationID,
		member.UserID,
		member.Role,
		time.Now(),
	)

	return err
}

func (r *OrganizationRepository) GetMember(orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, user_id, role, created_at
		FROM organization_members
		WHERE organization_id = $1 AND user_id = $2
	`

	var m models.OrganizationMember
	err := r.pool.QueryRow(ctx, query, orgID, userID).Scan(
		&m.ID,
		&m.OrganizationID,
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

func (r *OrganizationRepository) ListMembers(orgID uuid.UUID) ([]models.OrganizationMember, error) {
	ctx := context.Background()

	query := `
		SELECT id, organization_id, user_id, role, created_at
		FROM organization_members
		WHERE organization_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.OrganizationMember
	for rows.Next() {
		var m models.OrganizationMember
		err := rows.Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *OrganizationRepository) RemoveMember(orgID, userID uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM organization_members WHERE organization_id = $1 AND user_id = $2`
	result, err := r.pool.Exec(ctx, query, orgID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("member not found")
	}

	return nil
}
