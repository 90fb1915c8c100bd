package entity

import (
	"time"
)

// User is the stored account record.
// Password holds the bcrypt hash, never the plain secret.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the public part of a user handed out after a successful login.
// It deliberately has no password field.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Identity returns the public projection of u.
func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Name: u.Name, Email: u.Email}
}
