package models

import (
	"time"

	"github.com/google/uuid"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type Task struct {
	ID            uuid.UUID  `json:"id"`
	ProjectID     uuid.UUID  `json:"project_id"`
	SprintID      *uuid.UUID `json:"sprint_id,omitempty"`
	StatusID      uuid.UUID  `json:"status_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Priority      string     `json:"priority"`
	AssigneeID    *uuid.UUID `json:"assignee_id,omitempty"`
	ReporterID    uuid.UUID  `json:"reporter_id"`
	EstimateHours *float32   `json:"estimate_hours,omitempty"`
	DueAt         *time.Time `json:"due_at,omitempty"`
	Position      int        `json:"position"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (t *Task) Prepare() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
}

type TaskDependency struct {
	ID          uuid.UUID `json:"id"`
	TaskID      uuid.UUID `json:"task_id"`
	DependsOnID uuid.UUID `json:"depends_on_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d *TaskDependency) Prepare() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
}

type TaskWatcher struct {
	TaskID    uuid.UUID `json:"task_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
