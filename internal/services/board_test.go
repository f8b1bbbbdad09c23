package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/planhub/planhub/internal/models"
)

func TestBuildBoard(t *testing.T) {
	todo := models.TaskStatus{ID: uuid.New(), Name: "To Do", Position: 0}
	doing := models.TaskStatus{ID: uuid.New(), Name: "In Progress", Position: 1}
	done := models.TaskStatus{ID: uuid.New(), Name: "Done", Position: 2}
	statuses := []models.TaskStatus{todo, doing, done}

	tasks := []models.Task{
		{ID: uuid.New(), Title: "first todo", StatusID: todo.ID, Position: 0},
		{ID: uuid.New(), Title: "second todo", StatusID: todo.ID, Position: 1},
		{ID: uuid.New(), Title: "in flight", StatusID: doing.ID, Position: 0},
	}

	board := BuildBoard(statuses, tasks)

	assert.Len(t, board, 3)
	assert.Equal(t, "To Do", board[0].Status.Name)
	assert.Equal(t, "In Progress", board[1].Status.Name)
	assert.Equal(t, "Done", board[2].Status.Name)

	assert.Len(t, board[0].Tasks, 2)
	assert.Equal(t, "first todo", board[0].Tasks[0].Title)
	assert.Equal(t, "second todo", board[0].Tasks[1].Title)
	assert.Len(t, board[1].Tasks, 1)

	// Empty lanes serialize as [] rather than null.
	assert.NotNil(t, board[2].Tasks)
	assert.Empty(t, board[2].Tasks)
}

func TestBuildBoardDropsTasksWithUnknownStatus(t *testing.T) {
	todo := models.TaskStatus{ID: uuid.New(), Name: "To Do"}
	tasks := []models.Task{
		{ID: uuid.New(), Title: "orphan", StatusID: uuid.New()},
		{ID: uuid.New(), Title: "kept", StatusID: todo.ID},
	}

	board := BuildBoard([]models.TaskStatus{todo}, tasks)

	assert.Len(t, board, 1)
	assert.Len(t, board[0].Tasks, 1)
	assert.Equal(t, "kept", board[0].Tasks[0].Title)
}

func TestBuildBoardNoStatuses(t *testing.T) {
	board := BuildBoard(nil, []models.Task{{ID: uuid.New()}})
	assert.Empty(t, board)
}
