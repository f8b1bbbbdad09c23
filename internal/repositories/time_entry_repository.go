package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planhub/planhub/internal/models"
)

type TimeEntryRepository struct {
	pool *pgxpool.Pool
}

func NewTimeEntryRepository(pool *pgxpool.Pool) *TimeEntryRepository {
	return &TimeEntryRepository{pool: pool}
}

func (r *TimeEntryRepository) Create(entry *models.TimeEntry) error {
	ctx := context.Background()

	entry.Prepare()

	query := `
		INSERT INTO time_entries (id, task_id, user_id, started_at, duration_minutes, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.TaskID,
		entry.UserID,
		entry.StartedAt,
		entry.DurationMinutes,
		entry.Note,
		time.Now(),
	)

	return err
}

func (r *TimeEntryRepository) ListByTask(taskID uuid.UUID) ([]models.TimeEntry, error) {
	ctx := context.Background()

	query := `
		SELECT id, task_id, user_id, started_at, duration_minutes, note, created_at
		FROM time_entries WHERE task_id = $1
		ORDER BY started_at
	`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.TimeEntry
	for rows.Next() {
		var e models.TimeEntry
		err := rows.Scan(&e.ID, &e.TaskID, &e.UserID, &e.StartedAt, &e.DurationMinutes, &e.Note, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *TimeEntryRepository) CountByTask(taskID uuid.UUID) (int64, error) {
	ctx := context.Background()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM time_entries WHERE task_id = $1`, taskID).Scan(&count)
	return count, err
}

func (r *TimeEntryRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM time_entries WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// TotalMinutesByTask sums logged time for a task.
func (r *TimeEntryRepository) TotalMinutesByTask(taskID uuid.UUID) (int64, error) {
	ctx := context.Background()

	var total int64
	query := `SELECT COALESCE(SUM(duration_minutes), 0) FROM time_entries WHERE task_id = $1`
	err := r.pool.QueryRow(ctx, query, taskID).Scan(&total)
	return total, err
}
