package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/services"
	"taskboard.com/taskboard/pkg/auth"
)

type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

// BearerAuth attaches the user of a valid bearer token to the request
// context. Missing or invalid tokens leave the request anonymous; the
// resolvers decide whether that is acceptable.
func BearerAuth(tokens TokenResolver, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			token, err := auth.ExtractTokenFromHeader(header)
			if err != nil {
				return next(c)
			}

			ctx := c.Request().Context()
			user, err := tokens.ResolveToken(ctx, token)
			if err != nil {
				if apperrors.KindOf(err) == apperrors.KindInternal {
					logger.Error("resolve bearer token", zap.Error(err))
				}
				return next(c)
			}

			c.SetRequest(c.Request().WithContext(services.WithUser(ctx, user)))
			return next(c)
		}
	}
}
