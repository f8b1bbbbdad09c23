package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planhub/planhub/internal/models"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	ctx := context.Background()

	comment.Prepare()

	query := `
		INSERT INTO comments (id, task_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.TaskID,
		comment.AuthorID,
		comment.Body,
		time.Now(),
	)

	return err
}

func (r *CommentRepository) ListByTask(taskID uuid.UUID) ([]models.Comment, error) {
	ctx := context.Background()

	query := `
		SELECT id, task_id, author_id, body, created_at
		FROM comments WHERE task_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *CommentRepository) CountByTask(taskID uuid.UUID) (int64, error) {
	ctx := context.Background()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE task_id = $1`, taskID).Scan(&count)
	return count, err
}

func (r *CommentRepository) DeleteByIDAndAuthor(id, authorID uuid.UUID) error {
	ctx := context.Background()

	query := `DELETE FROM comments WHERE id = $1 AND author_id = $2`
	result, err := r.pool.Exec(ctx, query, id, authorID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return errors.New("comment not found or access denied")
	}

	return nil
}
