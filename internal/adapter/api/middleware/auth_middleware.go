package middleware

import (
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"vendora/pkg/errors"
	"vendora/pkg/response"
)

type AuthMiddleware struct {
	authClient *auth.Client
}

func NewAuthMiddleware(authClient *auth.Client) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

// Authenticate verifies the Firebase ID token and stores the caller's uid on
// the context. Missing or invalid credentials surface as AUTH_REQUIRED so
// the client can distinguish "log in first" from other failures.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.AuthRequired("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.AuthRequired("Invalid authorization format", nil))
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, errors.AuthRequired("Invalid or expired token", err))
		}

		c.Set("uid", token.UID)

		return next(c)
	}
}
