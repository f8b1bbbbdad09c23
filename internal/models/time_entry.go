package models

import (
	"time"

	"github.com/google/uuid"
)

type TimeEntry struct {
	ID              uuid.UUID `json:"id"`
	TaskID          uuid.UUID `json:"task_id"`
	UserID          uuid.UUID `json:"user_id"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Note            *string   `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (e *TimeEntry) Prepare() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
}
