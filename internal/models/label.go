package models

import "github.com/google/uuid"

type Label struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
}

func (l *Label) Prepare() {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Color == "" {
		l.Color = "#808080"
	}
}
