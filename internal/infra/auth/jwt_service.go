// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskman/config"
	"taskman/internal/domain/entity"
	"taskman/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Process-wide signing secret, read-only after construction.
	ttl    time.Duration // Zero means tokens carry no expiry claim.
}

// NewJWTService is the constructor for jwtService. The secret is injected
// through config rather than read from ambient state, so tests can run with
// distinct secrets per instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &jwtService{
		secret: cfg.SecretKey.JWT,
		ttl:    cfg.SecretKey.TTL,
	}, nil
}

// Issue builds a claim from the user's ID and email and signs it with HS256.
// The password hash never enters the claim. With a zero TTL the token has no
// expiry claim; configuring a TTL turns expiry on.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(), // Subject (who the token is for)
		"email": user.Email,
		"iat":   time.Now().Unix(), // Issued At
	}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify checks the token signature against the server secret and returns
// the embedded claims. Verification never touches the credential store, so a
// deleted credential keeps verifying until expiry.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to parse token structure"), err)
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	if err := claims.ResolveUserID(); err != nil {
		return nil, err
	}

	return claims, nil
}
