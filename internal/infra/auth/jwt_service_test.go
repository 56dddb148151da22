package auth

import (
	"strings"
	"testing"
	"time"

	"taskman/config"
	"taskman/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = secret
	cfg.SecretKey.TTL = ttl

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "a@b.com",
		PasswordHash: "$2a$10$should.never.appear.in.token",
	}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// The serialized token must never contain the password hash.
	assert.NotContains(t, token, user.PasswordHash)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestJWTService_NoExpiryByDefault(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	token, err := svc.Issue(&entity.User{ID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt, "zero TTL must issue tokens without an exp claim")
}

func TestJWTService_ExpiryWhenTTLConfigured(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(&entity.User{ID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_WrongSecretFailsVerification(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret_one_very_long_for_testing", 0))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret_two_very_long_for_testing", 0))
	require.NoError(t, err)

	token, err := issuer.Issue(&entity.User{ID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedTokenFailsVerification(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	token, err := svc.Issue(&entity.User{ID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	// Flip one character in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	claims, err := svc.Verify(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	// Token with alg "none" must be rejected by the signing method check.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "a@b.com",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("", 0))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
