package models

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User matches the users table.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Password     string     `json:"password,omitempty"` // plain password from request bodies, never stored
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (u *User) Prepare() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = html.EscapeString(strings.TrimSpace(strings.ToLower(u.Email)))
	u.Name = strings.TrimSpace(u.Name)
}
