package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/ziswafid/ziswaf-manager/internal/pkg/jwt"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/utils"
)

// JWTAuthMiddleware creates a middleware for session token authentication.
// On success the user id and msisdn from the token are stored in the
// Echo context under "user_id" and "msisdn".
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set("user_id", claims.UserID.String())
			c.Set("msisdn", claims.MSISDN)

			return next(c)
		}
	}
}
