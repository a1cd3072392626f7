package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/pkg/auth"
)

type AuthService struct {
	users     *repository.UserRepository
	tokens    *auth.TokenManager
	passwords *auth.PasswordManager
	logger    *zap.Logger
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

func NewAuthService(
	users *repository.UserRepository,
	tokens *auth.TokenManager,
	passwords *auth.PasswordManager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong password fail with the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Info("login failed", zap.String("reason", "unknown email"))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.passwords.ComparePassword(user.PasswordDigest, password); err != nil {
		s.logger.Info("login failed", zap.String("reason", "wrong password"), zap.String("user_id", user.ID))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// ResolveToken returns the user a bearer token belongs to. Tokens of deleted
// users resolve to ErrUnauthenticated like any other invalid token.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
