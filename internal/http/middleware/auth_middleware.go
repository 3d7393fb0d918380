package middleware

import (
	"net/http"

	"eventide/internal/domain/entity"
	"eventide/internal/utils"
	"eventide/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProfileProvider interface {
	EnsureProfile(token *utils.TokenData) (*entity.Profile, apierror.ErrorResponse)
}

type AuthMiddlewareConfig struct {
	Profiles ProfileProvider
}

// NewAuthMiddleware validates the bearer token and resolves the caller's
// profile, creating it on first login. Identity always comes from the
// verified token, never from the request body.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidTokenError)
			}

			profile, apierr := cfg.Profiles.EnsureProfile(tokenData)
			if apierr != nil {
				return c.JSON(apierr.Code(), apierr)
			}

			c.Set("profile", profile)
			c.Set("sub", tokenData.Sub)
			return next(c)
		}
	}
}
