package identity

import (
	"context"
	"errors"

	"smartdo/internal/model"
)

var _ model.IdentityProvider = Noop{}

// Noop is used when no identity client is registered: sign-in must come from
// an external widget posting its credential, and there is no account
// selection state to forget.
type Noop struct{}

func (Noop) Prompt(context.Context) (string, error) {
	return "", errors.New("no identity provider configured")
}

func (Noop) DisableAutoSelect(context.Context) error {
	return nil
}
