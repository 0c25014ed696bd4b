package api

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/pkg/utils"
)

// AdminMiddleware guards the reference-data management endpoints.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
