package service

import (
	"context"
	"fmt"

	"smartdo/internal/logger"
	"smartdo/internal/model"
)

// Auth bridges identity credentials to the session store. Presentation and
// signature verification belong to the identity provider; this service only
// decodes credentials it already trusts and keeps the resulting session.
type Auth struct {
	sessions model.SessionStore
	decoder  model.IdentityDecoder
	provider model.IdentityProvider
	logger   *logger.Logger
}

func NewAuth(
	sessions model.SessionStore,
	decoder model.IdentityDecoder,
	provider model.IdentityProvider,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		sessions: sessions,
		decoder:  decoder,
		provider: provider,
		logger:   logger,
	}
}

// HandleCredential decodes an identity credential and persists the resulting
// user as the active session. The session is left untouched when decoding
// fails.
func (a *Auth) HandleCredential(ctx context.Context, credential string) (model.User, error) {
	user, err := a.decoder.Decode(credential)
	if err != nil {
		a.logger.Info("Auth service: rejected identity credential",
			"error", err.Error())
		return model.User{}, err
	}

	if err := a.sessions.Save(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("failed to save session: %w", err)
	}

	a.logger.Info("Auth service: user signed in",
		"user_id", user.ID)

	return user, nil
}

// SignIn runs the identity provider's interactive prompt and authenticates
// with the credential it returns.
func (a *Auth) SignIn(ctx context.Context) (model.User, error) {
	credential, err := a.provider.Prompt(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("identity prompt failed: %w", err)
	}

	return a.HandleCredential(ctx, credential)
}

// CurrentUser returns the active session user, if any.
func (a *Auth) CurrentUser(ctx context.Context) (model.User, bool) {
	return a.sessions.Load(ctx)
}

// SignOut clears the session and tells the identity provider not to reuse
// the previous account automatically. The auto-select part is a UX nicety,
// so its failure is logged and not returned.
func (a *Auth) SignOut(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if err := a.provider.DisableAutoSelect(ctx); err != nil {
		a.logger.Warn("Auth service: failed to disable account auto-select",
			"error", err.Error())
	}

	a.logger.Info("Auth service: user signed out")

	return nil
}
