package middleware

import (
	"strings"

	jwtpkg "github.com/kliklance/kliklance/internal/pkg/jwt"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// OptionalJWTMiddleware resolves identity from a Bearer token when one
// is present and valid, and stores user_id/user_role in the request
// context. It never rejects: websocket handshakes carry their own
// credential tiers and treat this identity as a fallback.
func OptionalJWTMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return next(c)
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				logger.Warn("Bearer token validation failed",
					logger.Err(err))
				return next(c)
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}
