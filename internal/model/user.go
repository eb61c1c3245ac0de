// Package model defines domain entities for the application.
package model

import "time"

// User represents an author identity.
// Users are created on signup and never mutated or deleted afterwards.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	// Password is stored exactly as received unless hashing mode is
	// enabled. Never serialized.
	Password  string    `json:"-"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the user's name, or "Anonymous" when unset.
func (u *User) DisplayName() string {
	if u.Name == nil || *u.Name == "" {
		return "Anonymous"
	}
	return *u.Name
}
