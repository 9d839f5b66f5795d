package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/bookingflow/internal/pkg/jwt"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/internal/utils"
)

// JWTAuthMiddleware reads the caller from the bearer token and keeps the
// raw token so it can be forwarded to the marketplace backend.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			claims, err := jwtpkg.ParseClaims(tokenString, config.Secret)
			if err != nil {
				logger.Debug("Token rejected", logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(requestcontext.EchoUserID, claims.UserID)
			c.Set(requestcontext.EchoRole, claims.Role)
			c.Set(requestcontext.EchoBearer, tokenString)

			return next(c)
		}
	}
}

// bearerToken takes the token from the Authorization header. Browsers
// cannot set headers on websocket upgrades, so the "token" query
// parameter is accepted as well.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if token := c.QueryParam("token"); token != "" {
		return token, true
	}
	return "", false
}
