package token

import (
	"fmt"
	"slices"

	"github.com/golang-jwt/jwt/v5"

	"smartdo/internal/model"
)

// IdentityClaims are the identity-token payload fields this server consumes.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

var _ model.IdentityDecoder = (*Decoder)(nil)

// Decoder extracts a user record from a compact three-part identity
// credential. The signature is not checked here: the identity provider
// verifies the credential before it reaches this process, and the decoder
// trusts that transport. When a client ID is configured the audience claim
// must contain it.
type Decoder struct {
	clientID string
}

// NewDecoder creates a decoder. clientID may be empty to skip the audience
// check.
func NewDecoder(clientID string) *Decoder {
	return &Decoder{clientID: clientID}
}

// Decode parses the credential payload and maps it to a user record.
func (d *Decoder) Decode(credential string) (model.User, error) {
	claims := &IdentityClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, claims); err != nil {
		return model.User{}, fmt.Errorf("%w: %w", model.ErrInvalidCredential, err)
	}

	if claims.Subject == "" {
		return model.User{}, fmt.Errorf("%w: missing subject", model.ErrInvalidCredential)
	}

	if d.clientID != "" && !slices.Contains(claims.Audience, d.clientID) {
		return model.User{}, fmt.Errorf("%w: audience mismatch", model.ErrInvalidCredential)
	}

	return model.User{
		ID:       claims.Subject,
		Name:     claims.Name,
		Email:    claims.Email,
		PhotoURL: claims.Picture,
	}, nil
}
