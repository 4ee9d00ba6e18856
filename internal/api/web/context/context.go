package context

import (
	"context"

	"smartdo/internal/model"
)

type ctxKey int

// userKey is the context key under which the authenticated user travels.
const userKey ctxKey = iota

// Manager moves the authenticated user in and out of request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a child context carrying the user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the user stored in the context, reporting
// whether one was present.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
