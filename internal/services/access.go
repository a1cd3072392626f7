package services

import (
	"context"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

type currentUserKey struct{}

// WithUser attaches the authenticated user to ctx.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, currentUserKey{}, user)
}

func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(currentUserKey{}).(*model.User)
	return user, ok && user != nil
}

// Authenticate returns the request's user or ErrUnauthenticated.
func Authenticate(ctx context.Context) (*model.User, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}

// RequireAdmin returns the request's user if it is an admin.
func RequireAdmin(ctx context.Context) (*model.User, error) {
	user, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	if !IsAdmin(user) {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

func IsAdmin(user *model.User) bool {
	return user.IsAdmin()
}
