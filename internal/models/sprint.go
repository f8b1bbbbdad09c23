package models

import (
	"time"

	"github.com/google/uuid"
)

// Sprint states.
const (
	SprintStatePlanned   = "planned"
	SprintStateActive    = "active"
	SprintStateCompleted = "completed"
)

// Sprint is a time-boxed grouping of tasks within a project.
type Sprint struct {
	ID        uuid.UUID  `json:"id"`
	ProjectID uuid.UUID  `json:"project_id"`
	Name      string     `json:"name"`
	Goal      *string    `json:"goal,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s *Sprint) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.State == "" {
		s.State = SprintStatePlanned
	}
}
