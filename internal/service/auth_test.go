package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"smartdo/internal/mocks"
	"smartdo/internal/model"
	"smartdo/internal/testutil"
)

func TestAuth_HandleCredential(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewSessionStore(t)
	decoder := mocks.NewIdentityDecoder(t)
	provider := mocks.NewIdentityProvider(t)

	user := model.User{ID: "u1", Name: "Ana Lee", Email: "ana@example.com"}
	decoder.On("Decode", "credential-token").Return(user, nil)
	sessions.On("Save", mock.Anything, user).Return(nil)

	a := NewAuth(sessions, decoder, provider, testutil.MakeNoopLogger())

	got, err := a.HandleCredential(ctx, "credential-token")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuth_HandleCredential_DecodeFailure(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewSessionStore(t)
	decoder := mocks.NewIdentityDecoder(t)
	provider := mocks.NewIdentityProvider(t)

	decoder.On("Decode", "bad").Return(model.User{}, model.ErrInvalidCredential)

	a := NewAuth(sessions, decoder, provider, testutil.MakeNoopLogger())

	_, err := a.HandleCredential(ctx, "bad")
	require.ErrorIs(t, err, model.ErrInvalidCredential)

	// a rejected credential must not touch the session
	sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuth_HandleCredential_SaveFailure(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewSessionStore(t)
	decoder := mocks.NewIdentityDecoder(t)
	provider := mocks.NewIdentityProvider(t)

	decoder.On("Decode", "credential-token").Return(model.User{ID: "u1"}, nil)
	sessions.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	a := NewAuth(sessions, decoder, provider, testutil.MakeNoopLogger())

	_, err := a.HandleCredential(ctx, "credential-token")
	require.Error(t, err)
}

func TestAuth_SignIn(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewSessionStore(t)
	decoder := mocks.NewIdentityDecoder(t)
	provider := mocks.NewIdentityProvider(t)

	user := model.User{ID: "u1"}
	provider.On("Prompt", mock.Anything).Return("credential-token", nil)
	decoder.On("Decode", "credential-token").Return(user, nil)
	sessions.On("Save", mock.Anything, user).Return(nil)

	a := NewAuth(sessions, decoder, provider, testutil.MakeNoopLogger())

	got, err := a.SignIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuth_SignIn_PromptFailure(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewSessionStore(t)
	decoder := mocks.NewIdentityDecoder(t)
	provider := mocks.NewIdentityProvider(t)

	provider.On("Prompt", mock.Anything).Return("", errors.New("flow cancelled"))

	a := NewAuth(sessions, decoder, provider, testutil.MakeNoopLogger())

	_, err := a.SignIn(ctx)
	require.Error(t, err)
}

func TestAuth_CurrentUser(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewSessionStore(t)
	decoder := mocks.NewIdentityDecoder(t)
	provider := mocks.NewIdentityProvider(t)

	user := model.User{ID: "u1"}
	sessions.On("Load", mock.Anything).Return(user, true)

	a := NewAuth(sessions, decoder, provider, testutil.MakeNoopLogger())

	got, ok := a.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestAuth_SignOut(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewSessionStore(t)
	decoder := mocks.NewIdentityDecoder(t)
	provider := mocks.NewIdentityProvider(t)

	sessions.On("Clear", mock.Anything).Return(nil)
	provider.On("DisableAutoSelect", mock.Anything).Return(nil)

	a := NewAuth(sessions, decoder, provider, testutil.MakeNoopLogger())

	require.NoError(t, a.SignOut(ctx))
}

func TestAuth_SignOut_AutoSelectFailureIgnored(t *testing.T) {
	ctx := context.Background()
	sessions := mocks.NewSessionStore(t)
	decoder := mocks.NewIdentityDecoder(t)
	provider := mocks.NewIdentityProvider(t)

	sessions.On("Clear", mock.Anything).Return(nil)
	provider.On("DisableAutoSelect", mock.Anything).Return(errors.New("no token"))

	a := NewAuth(sessions, decoder, provider, testutil.MakeNoopLogger())

	require.NoError(t, a.SignOut(ctx))
}
