package middleware

import (
	stderrors "errors"

	"transaction-reports/internal/errors"
	"transaction-reports/internal/handlers"
	"transaction-reports/internal/services"

	"github.com/labstack/echo/v4"
)

// ClientAuthConfig controls how the calling client is identified
type ClientAuthConfig struct {
	// Enabled requires a bearer token carrying a client_id claim
	Enabled bool
	// DefaultClientID identifies every caller when Enabled is false
	DefaultClientID int64
}

// ClientAuth resolves the calling client and stores its id and name in the context.
// With auth disabled every request is attributed to the configured default client.
func ClientAuth(tokenService services.TokenServiceInterface, cfg ClientAuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Enabled {
				c.Set(handlers.ClientIDContextKey, cfg.DefaultClientID)
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(handlers.ClientIDContextKey, claims.ClientID)
			c.Set(handlers.ClientNameContextKey, claims.ClientName)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}
