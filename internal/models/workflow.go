package models

import (
	"time"

	"github.com/google/uuid"
)

// Task status categories. Every status in a workflow belongs to exactly one.
const (
	StatusCategoryTodo       = "todo"
	StatusCategoryInProgress = "in_progress"
	StatusCategoryDone       = "done"
)

// Workflow is organization-level configuration defining the ordered states
// a task can occupy.
type Workflow struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	IsDefault      bool      `json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
}

func (w *Workflow) Prepare() {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
}

type TaskStatus struct {
	ID         uuid.UUID `json:"id"`
	WorkflowID uuid.UUID `json:"workflow_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Position   int       `json:"position"`
}

func (s *TaskStatus) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Category == "" {
		s.Category = StatusCategoryTodo
	}
}
