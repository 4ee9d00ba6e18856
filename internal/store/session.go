package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smartdo/internal/logger"
	"smartdo/internal/model"
)

// sessionKey is the single durable key holding the authenticated-user record.
const sessionKey = "smartdo_user"

var _ model.SessionStore = (*Session)(nil)

// Session persists the authenticated-user record in the key-value store.
// There is no expiry: the session lives until an explicit sign-out clears it.
type Session struct {
	kv     model.KV
	logger *logger.Logger
}

func NewSession(kv model.KV, logger *logger.Logger) *Session {
	return &Session{
		kv:     kv,
		logger: logger,
	}
}

// Load returns the persisted user, if any. Missing or malformed stored data
// is treated as absent so startup always reaches the unauthenticated state.
func (s *Session) Load(ctx context.Context) (model.User, bool) {
	value, err := s.kv.Get(ctx, sessionKey)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, false
	}
	if err != nil {
		s.logger.Error("Session store: failed to read session",
			"error", err.Error())
		return model.User{}, false
	}

	var user model.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		s.logger.Warn("Session store: discarding malformed session record",
			"error", err.Error())
		return model.User{}, false
	}
	if user.ID == "" {
		return model.User{}, false
	}

	return user, true
}

// Save replaces the persisted session with user.
func (s *Session) Save(ctx context.Context, user model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := s.kv.Set(ctx, sessionKey, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Clear removes the persisted session.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
