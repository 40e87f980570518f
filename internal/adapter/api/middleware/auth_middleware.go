package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shreeanna/internal/infrastructure/auth"
)

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
	}
}

// Authenticate verifies the bearer token and stores the caller's id and role
// on the request context. WebSocket clients may pass the token as a query
// parameter since browsers cannot set headers on upgrade requests.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ""

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
			}
			token = parts[1]
		} else {
			token = c.QueryParam("token")
		}

		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		claims, err := m.jwtManager.Verify(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", claims.UserID)
		c.Set("role", claims.Role)

		return next(c)
	}
}

// RequireRole restricts a route to the given roles. It assumes Authenticate
// ran earlier in the chain.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "You do not have access to this resource")
		}
	}
}
