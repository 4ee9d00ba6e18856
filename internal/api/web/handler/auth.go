package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"smartdo/internal/logger"
	"smartdo/internal/model"
)

// AuthService describes the authentication operations the handler exposes.
type AuthService interface {
	HandleCredential(ctx context.Context, credential string) (model.User, error)
	SignIn(ctx context.Context) (model.User, error)
	CurrentUser(ctx context.Context) (model.User, bool)
	SignOut(ctx context.Context) error
}

// Auth serves the authentication endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler instance.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type credentialRequest struct {
	Credential string `json:"credential"`
}

// HandleCredential signs a user in from an identity credential supplied by
// the caller, typically relayed from an external identity widget.
func (h *Auth) HandleCredential(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Credential == "" {
		writeError(w, http.StatusBadRequest, "credential is required")
		return
	}

	user, err := h.authService.HandleCredential(r.Context(), req.Credential)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// SignIn runs the interactive identity flow and returns the signed-in user.
func (h *Auth) SignIn(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.SignIn(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// CurrentUser returns the active session user or 401 when nobody is
// signed in.
func (h *Auth) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.authService.CurrentUser(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// SignOut clears the active session.
func (h *Auth) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.SignOut(r.Context()); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
