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

type SprintRepository struct {
	pool *pgxpool.Pool
}

func NewSprintRepository(pool *pgxpool.Pool) *SprintRepository {
	return &SprintRepository{pool: pool}
}

func (r *SprintRepository) Create(sprint *models.Sprint) error {
	ctx := context.Background()

	sprint.Prepare()

	query := `
		INSERT INTO sprints (id, project_id, name, goal, starts_at, ends_at, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		sprint.ID,
		sprint.ProjectID,
		sprint.Name,
		sprint.Goal,
		sprint.StartsAt,
		sprint.EndsAt,
		sprint.State,
		time.Now(),
	)

	return err
}

func (r *SprintRepository) GetByID(id uuid.UUID) (*models.Sprint, error) {
	ctx := context.Background()

	query := `
		SELECT id, project_id, name, goal, starts_at, ends_at, state, created_at
		FROM sprints WHERE id = $1
	`

	var sprint models.Sprint
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sprint.ID,
		&sprint.ProjectID,
		&sprint.Name,
		&sprint.Goal,
		&sprint.StartsAt,
		&sprint.EndsAt,
		&sprint.State,
		&sprint.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &sprint, nil
}

func (r *SprintRepository) GetByProjectAndName(projectID uuid.UUID, name string) (*models.Sprint, error) {
	ctx := context.Background()

	query := `
		SELECT id, project_id, name, goal, starts_at, ends_at, state, created_at
		FROM sprints WHERE project_id = $1 AND name = $2
	`

	var sprint models.Sprint
	err := r.pool.QueryRow(ctx, query, projectID, name).Scan(
		&sprint.ID,
		&sprint.ProjectID,
		&sprint.Name,
		&sprint.Goal,
		&sprint.StartsAt,
		&sprint.EndsAt,
		&sprint.State,
		&sprint.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &sprint, nil
}

func (r *SprintRepository) ListByProject(projectID uuid.UUID) ([]models.Sprint, error) {
	ctx := context.Background()

	query := `
		SELECT id, project_id, name, goal, starts_at, ends_at, state, created_at
		FROM sprints WHERE project_id = $1
		ORDER BY starts_at NULLS LAST, created_at
	`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sprints []models.Sprint
	for rows.Next() {
		var sprint models.Sprint
		err := rows.Scan(
			&sprint.ID,
			&sprint.ProjectID,
			&sprint.Name,
			&sprint.Goal,
			&sprint.StartsAt,
			&sprint.EndsAt,
			&sprint.State,
			&sprint.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, sprint)
	}

	return sprints, rows.Err()
}

func (r *SprintRepository) Update(sprint *models.Sprint) error {
	ctx := context.Background()

	query := `
		UPDATE sprints SET
			name = $2, goal = $3, starts_at = $4, ends_at = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		sprint.ID,
		sprint.Name,
		sprint.Goal,
		sprint.StartsAt,
		sprint.EndsAt,
	)

	return err
}

func (r *SprintRepository) UpdateState(id uuid.UUID, state string) error {
	ctx := context.Background()

	query := `UPDATE sprints SET state = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, state)
	return err
}

func (r *SprintRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM sprints WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// ClearUnfinishedTasks detaches tasks that are not in a done-category status
// from the sprint. Used when completing a sprint.
func (r *SprintRepository) ClearUnfinishedTasks(sprintID uuid.UUID) (int64, error) {
	ctx := context.Background()

	query := `
		UPDATE tasks SET sprint_id = NULL
		WHERE sprint_id = $1
		AND status_id NOT IN (
			SELECT id FROM task_statuses WHERE category = 'done'
		)
	`

	result, err := r.pool.Exec(ctx, query, sprintID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
