package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planhub/planhub/internal/models"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `id, project_id, sprint_id, status_id, title, description, priority,
	assignee_id, reporter_id, estimate_hours, due_at, position, created_at, updated_at`

func scanTask(row pgx.Row) (*models.Task, error) {
	var task models.Task
	err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.SprintID,
		&task.StatusID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.AssigneeID,
		&task.ReporterID,
		&task.EstimateHours,
		&task.DueAt,
		&task.Position,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(task *models.Task) error {
	ctx := context.Background()

	task.Prepare()

	query := `
		INSERT INTO tasks (id, project_id, sprint_id, status_id, title, description, priority,
			assignee_id, reporter_id, estimate_hours, due_at, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		task.ID,
		task.ProjectID,
		task.SprintID,
		task.StatusID,
		task.Title,
		task.Description,
		task.Priority,
		task.AssigneeID,
		task.ReporterID,
		task.EstimateHours,
		task.DueAt,
		task.Position,
		time.Now(),
	)

	return err
}

func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	ctx := context.Background()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) GetByProjectAndTitle(projectID uuid.UUID, title string) (*models.Task, error) {
	ctx := context.Background()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 AND title = $2 LIMIT 1`

	task, err := scanTask(r.pool.QueryRow(ctx, query, projectID, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

// TaskFilter narrows ListByProject. Zero values mean "no filter".
type TaskFilter struct {
	SprintID   *uuid.UUID
	StatusID   *uuid.UUID
	AssigneeID *uuid.UUID
	Search     string
}

func (r *TaskRepository) ListByProject(projectID uuid.UUID, filter TaskFilter) ([]models.Task, error) {
	ctx := context.Background()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1`
	args := []interface{}{projectID}

	if filter.SprintID != nil {
		args = append(args, *filter.SprintID)
		query += fmt.Sprintf(" AND sprint_id = $%d", len(args))
	}
	if filter.StatusID != nil {
		args = append(args, *filter.StatusID)
		query += fmt.Sprintf(" AND status_id = $%d", len(args))
	}
	if filter.AssigneeID != nil {
		args = append(args, *filter.AssigneeID)
		query += fmt.Sprintf(" AND assignee_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	query += " ORDER BY position, created_at"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

func (r *TaskRepository) Update(task *models.Task) error {
	ctx := context.Background()

	query := `
		UPDATE tasks SET
			title = $2, description = $3, priority = $4, sprint_id = $5,
			estimate_hours = $6, due_at = $7, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Priority,
		task.SprintID,
		task.EstimateHours,
		task.DueAt,
	)

	return err
}

// Move places the task in a new status at the given position.
func (r *TaskRepository) Move(id, statusID uuid.UUID, position int) error {
	ctx := context.Background()

	query := `UPDATE tasks SET status_id = $2, position = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, statusID, position)
	return err
}

func (r *TaskRepository) Assign(id uuid.UUID, assigneeID *uuid.UUID) error {
	ctx := context.Background()

	query := `UPDATE tasks SET assignee_id = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, assigneeID)
	return err
}

func (r *TaskRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM tasks WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *TaskRepository) MaxPositionForStatus(statusID uuid.UUID) (int, error) {
	ctx := context.Background()

	var max int
	query := `SELECT COALESCE(MAX(position), -1) FROM tasks WHERE status_id = $1`
	err := r.pool.QueryRow(ctx, query, statusID).Scan(&max)
	return max, err
}

// Dependencies

func (r *TaskRepository) AddDependency(dep *models.TaskDependency) error {
	ctx := context.Background()

	dep.Prepare()

	query := `
		INSERT INTO task_dependencies (id, task_id, depends_on_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, dep.ID, dep.TaskID, dep.DependsOnID, time.Now())
	return err
}

func (r *TaskRepository) HasDependency(taskID, dependsOnID uuid.UUID) (bool, error) {
	ctx := context.Background()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM task_dependencies WHERE task_id = $1 AND depends_on_id = $2)`
	err := r.pool.QueryRow(ctx, query, taskID, dependsOnID).Scan(&exists)
	return exists, err
}

func (r *TaskRepository) ListDependencies(taskID uuid.UUID) ([]models.TaskDependency, error) {
	ctx := context.Background()

	query := `
		SELECT id, task_id, depends_on_id, created_at
		FROM task_dependencies WHERE task_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deps []models.TaskDependency
	for rows.Next() {
		var d models.TaskDependency
		if err := rows.Scan(&d.ID, &d.TaskID, &d.DependsOnID, &d.CreatedAt); err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}

	return deps, rows.Err()
}

// Watchers

func (r *TaskRepository) AddWatcher(taskID, userID uuid.UUID) error {
	ctx := context.Background()

	query := `
		INSERT INTO task_watchers (task_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (task_id, user_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, taskID, userID, time.Now())
	return err
}

func (r *TaskRepository) RemoveWatcher(taskID, userID uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM task_watchers WHERE task_id = $1 AND user_id = $2`
	_, err := r.pool.Exec(ctx, query, taskID, userID)
	return err
}

func (r *TaskRepository) ListWatchers(taskID uuid.UUID) ([]uuid.UUID, error) {
	ctx := context.Background()

	query := `SELECT user_id FROM task_watchers WHERE task_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var watchers []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		watchers = append(watchers, id)
	}

	return watchers, rows.Err()
}
