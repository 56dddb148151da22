package middleware

import (
	"strings"

	deliverycontext "taskman/internal/delivery/context"
	"taskman/internal/delivery/http/response"
	"taskman/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// QueryParamToken is the query parameter clients use to pass their access
// token. The Authorization header with a Bearer scheme is accepted as well.
const QueryParamToken = "secret_token"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token before any protected handler runs.
// Verification is purely cryptographic; no user lookup happens here, so a
// token stays valid until it expires even if the account state changes.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Access token is missing")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Expose the verified identity to handlers.
		deliverycontext.SetUserID(c, claims.UserID)
		deliverycontext.SetUserEmail(c, claims.Email)

		return next(c)
	}
}

// extractToken reads the token from the secret_token query parameter, falling
// back to the Authorization header.
func extractToken(c echo.Context) string {
	if token := c.QueryParam(QueryParamToken); token != "" {
		return token
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}
