package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planhub/planhub/internal/models"
)

type LabelRepository struct {
	pool *pgxpool.Pool
}

func NewLabelRepository(pool *pgxpool.Pool) *LabelRepository {
	return &LabelRepository{pool: pool}
}

func (r *LabelRepository) Create(label *models.Label) error {
	ctx := context.Background()

	label.Prepare()

	query := `
		INSERT INTO labels (id, project_id, name, color)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, label.ID, label.ProjectID, label.Name, label.Color)
	return err
}

func (r *LabelRepository) GetByProjectAndName(projectID uuid.UUID, name string) (*models.Label, error) {
	ctx := context.Background()

	query := `SELECT id, project_id, name, color FROM labels WHERE project_id = $1 AND name = $2`

	var label models.Label
	err := r.pool.QueryRow(ctx, query, projectID, name).Scan(&label.ID, &label.ProjectID, &label.Name, &label.Color)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &label, nil
}

func (r *LabelRepository) ListByProject(projectID uuid.UUID) ([]models.Label, error) {
	ctx := context.Background()

	query := `SELECT id, project_id, name, color FROM labels WHERE project_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []models.Label
	for rows.Next() {
		var label models.Label
		if err := rows.Scan(&label.ID, &label.ProjectID, &label.Name, &label.Color); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

func (r *LabelRepository) Delete(id uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM labels WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func (r *LabelRepository) AssignToTask(taskID, labelID uuid.UUID) error {
	ctx := context.Background()

	query := `
		INSERT INTO task_labels (task_id, label_id)
		VALUES ($1, $2)
		ON CONFLICT (task_id, label_id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, taskID, labelID)
	return err
}

func (r *LabelRepository) RemoveFromTask(taskID, labelID uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM task_labels WHERE task_id = $1 AND label_id = $2`
	_, err := r.pool.Exec(ctx, query, taskID, labelID)
	return err
}

func (r *LabelRepository) ListForTask(taskID uuid.UUID) ([]models.Label, error) {
	ctx := context.Background()

	query := `
		SELECT l.id, l.project_id, l.name, l.color
		FROM labels l
		JOIN task_labels tl ON tl.label_id = l.id
		WHERE tl.task_id = $1
		ORDER BY l.name
	`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []models.Label
	for rows.Next() {
		var label models.Label
		if err := rows.Scan(&label.ID, &label.ProjectID, &label.Name, &label.Color); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}
