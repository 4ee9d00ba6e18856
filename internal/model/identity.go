package model

import (
	"context"
	"errors"
)

// ErrInvalidCredential is returned when an identity credential cannot be
// decoded into a user record.
var ErrInvalidCredential = errors.New("invalid identity credential")

// IdentityDecoder extracts a user record from a signed identity credential.
type IdentityDecoder interface {
	Decode(credential string) (User, error)
}

// IdentityProvider abstracts the external identity widget: it can prompt for
// a fresh credential and suppress automatic re-selection of the previous
// account on the next prompt.
type IdentityProvider interface {
	Prompt(ctx context.Context) (string, error)
	DisableAutoSelect(ctx context.Context) error
}
