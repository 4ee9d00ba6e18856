package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"smartdo/internal/logger"
	"smartdo/internal/model"
)

var _ model.IdentityProvider = (*Google)(nil)

// Config carries the identity provider client registration.
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackPort string
	TokenFile    string
}

// cachedToken is the on-disk token format. The ID token is stored alongside
// the OAuth token because oauth2.Token does not serialize its extra fields.
type cachedToken struct {
	oauth2.Token
	IDToken string `json:"id_token"`
}

// Google signs a user in through Google's OAuth endpoint and returns the
// issued ID token as the identity credential. An obtained token is cached on
// disk so later prompts reuse the same account without interaction;
// DisableAutoSelect drops that cache.
type Google struct {
	config    *oauth2.Config
	tokenFile string
	port      string
	logger    *logger.Logger
}

func NewGoogle(cfg Config, logger *logger.Logger) *Google {
	return &Google{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  fmt.Sprintf("http://localhost:%s/oauth2/callback", cfg.CallbackPort),
			Scopes:       []string{"openid", "email", "profile"},
		},
		tokenFile: cfg.TokenFile,
		port:      cfg.CallbackPort,
		logger:    logger,
	}
}

// Prompt returns a signed identity credential for the selected account.
// A cached token with a usable ID token short-circuits the interactive flow.
func (g *Google) Prompt(ctx context.Context) (string, error) {
	if credential, ok := g.cachedCredential(); ok {
		return credential, nil
	}

	tok, err := g.authorize(ctx)
	if err != nil {
		return "", err
	}

	credential, ok := tok.Extra("id_token").(string)
	if !ok || credential == "" {
		return "", errors.New("authorization response carries no id_token")
	}

	g.saveToken(tok, credential)

	return credential, nil
}

// DisableAutoSelect forgets the cached token so the next prompt asks the
// user to pick an account again.
func (g *Google) DisableAutoSelect(_ context.Context) error {
	err := os.Remove(g.tokenFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cached token: %w", err)
	}
	return nil
}

func (g *Google) cachedCredential() (string, bool) {
	data, err := os.ReadFile(g.tokenFile)
	if err != nil {
		return "", false
	}

	var cached cachedToken
	if err := json.Unmarshal(data, &cached); err != nil {
		g.logger.Warn("Identity provider: discarding malformed token cache",
			"error", err.Error())
		return "", false
	}
	if cached.IDToken == "" || !cached.Token.Valid() {
		return "", false
	}

	return cached.IDToken, true
}

// authorize runs the authorization-code flow against a short-lived local
// callback listener.
func (g *Google) authorize(ctx context.Context) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "localhost:"+g.port)
	if err != nil {
		return nil, fmt.Errorf("failed to listen for oauth callback: %w", err)
	}
	defer listener.Close()

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Query().Get("code")
			if code == "" {
				http.Error(w, "authorization code not found", http.StatusBadRequest)
				errCh <- errors.New("authorization code not found in callback")
				return
			}
			fmt.Fprint(w, "Signed in. You can close this window.")
			codeCh <- code
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	defer srv.Shutdown(context.Background())

	authURL := g.config.AuthCodeURL("state-token",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "select_account"))
	g.logger.Info("Identity provider: waiting for sign-in",
		"url", authURL)

	select {
	case code := <-codeCh:
		tok, err := g.config.Exchange(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
		}
		return tok, nil
	case err := <-errCh:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// saveToken caches the token on disk. Failure to cache only costs the user a
// re-prompt, so it is logged and not returned.
func (g *Google) saveToken(tok *oauth2.Token, idToken string) {
	data, err := json.Marshal(cachedToken{Token: *tok, IDToken: idToken})
	if err != nil {
		g.logger.Warn("Identity provider: failed to marshal token cache",
			"error", err.Error())
		return
	}

	if err := os.MkdirAll(filepath.Dir(g.tokenFile), 0o700); err != nil {
		g.logger.Warn("Identity provider: failed to create token cache directory",
			"error", err.Error())
		return
	}
	if err := os.WriteFile(g.tokenFile, data, 0o600); err != nil {
		g.logger.Warn("Identity provider: failed to write token cache",
			"error", err.Error())
	}
}
