package model

import "context"

// SessionStore persists the single authenticated-user record.
type SessionStore interface {
	Load(ctx context.Context) (User, bool)
	Save(ctx context.Context, user User) error
	Clear(ctx context.Context) error
}

// User represents an authenticated identity issued by the identity provider.
// Field tags match the stored JSON format.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
