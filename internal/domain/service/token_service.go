package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskman/internal/domain/entity"
)

// Claims defines the identity embedded in a bearer token: the user's ID and
// email, and nothing else. The password hash never enters a token.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// ResolveUserID parses the registered subject claim into UserID. It is
// called after signature verification; a subject that is not a UUID makes
// the token invalid.
func (c *Claims) ResolveUserID() error {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return err
	}
	c.UserID = id

	return nil
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Verification is stateless: it checks the signature against the server
// secret and never consults the credential store. A credential removed after
// issuance therefore still verifies until the token expires (if it ever
// does); that is the price of not hitting the store on every request.
type TokenService interface {
	// Issue builds a claim from the user's ID and email and returns the
	// signed serialized token.
	Issue(user *entity.User) (string, error)

	// Verify validates the token signature and returns the embedded claims.
	// Malformed or tampered tokens, and tokens signed with a different
	// secret, fail with an error.
	Verify(tokenString string) (*Claims, error)
}
