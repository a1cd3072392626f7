package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"taskboard.com/taskboard/internal/constants"
	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/pkg/auth"
)

const (
	maxUserNameLength = 50

	// the unique index on users.email backs this when two requests race
	msgEmailTaken = "Email has already been taken"
)

type UserService struct {
	users     *repository.UserRepository
	passwords *auth.PasswordManager
	logger    *zap.Logger
}

type NewUser struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// UserChanges holds an update; nil fields are left as they are.
type UserChanges struct {
	Name                 *string
	Email                *string
	CurrentPassword      *string
	Password             *string
	PasswordConfirmation *string
}

func NewUserService(users *repository.UserRepository, passwords *auth.PasswordManager, logger *zap.Logger) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Register is the public sign-up: no authentication, always a regular user.
func (s *UserService) Register(ctx context.Context, in NewUser) (*model.User, error) {
	return s.Provision(ctx, in, constants.LevelUser)
}

// CreateAdmin lets an admin create another admin account.
func (s *UserService) CreateAdmin(ctx context.Context, in NewUser) (*model.User, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.Provision(ctx, in, constants.LevelAdmin)
}

// Provision creates a user of the given level without any authorization
// check. It backs Register, CreateAdmin and the create-admin command.
func (s *UserService) Provision(ctx context.Context, in NewUser, level constants.UserLevel) (*model.User, error) {
	v := &apperrors.ValidationError{}
	if err := s.validateIdentity(ctx, v, in.Name, in.Email, ""); err != nil {
		return nil, err
	}
	if err := auth.ValidatePasswordPair(in.Password, in.PasswordConfirmation); err != nil {
		v.Add(err.Error())
	}
	if !level.Valid() {
		v.Add("Level is not included in the list")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	digest, err := s.passwords.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordDigest: digest,
		Level:          level,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewValidationError(msgEmailTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created", zap.String("user_id", user.ID), zap.String("level", string(level)))
	return user, nil
}

// Update changes the user identified by id. Users may only update themselves;
// admins may update anyone. A password change needs the current password.
func (s *UserService) Update(ctx context.Context, id string, in UserChanges) (*model.User, error) {
	target, err := s.manageableUser(ctx, id)
	if err != nil {
		return nil, err
	}

	v := &apperrors.ValidationError{}

	name, email := target.Name, target.Email
	if in.Name != nil {
		name = *in.Name
	}
	if in.Email != nil {
		email = *in.Email
	}
	if in.Name != nil || in.Email != nil {
		if err := s.validateIdentity(ctx, v, name, email, target.ID); err != nil {
			return nil, err
		}
	}

	password, confirmation := deref(in.Password), deref(in.PasswordConfirmation)
	changingPassword := password != "" || confirmation != ""
	if changingPassword {
		current := deref(in.CurrentPassword)
		if current == "" {
			return nil, apperrors.ErrCurrentPasswordRequired
		}
		if err := s.passwords.ComparePassword(target.PasswordDigest, current); err != nil {
			return nil, apperrors.ErrCurrentPasswordIncorrect
		}
		if err := auth.ValidatePasswordPair(password, confirmation); err != nil {
			v.Add(err.Error())
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	target.Name = name
	target.Email = email
	if changingPassword {
		digest, err := s.passwords.HashPassword(password)
		if err != nil {
			return nil, err
		}
		target.PasswordDigest = digest
	}

	if err := s.users.Update(ctx, target); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewValidationError(msgEmailTaken)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return target, nil
}

// Delete removes a user together with the projects they own.
func (s *UserService) Delete(ctx context.Context, id string) error {
	target, err := s.manageableUser(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.users.Delete(ctx, target.ID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return apperrors.ErrUserNotFound
	}

	s.logger.Info("user deleted", zap.String("user_id", target.ID))
	return nil
}

func (s *UserService) List(ctx context.Context, filter repository.UserFilter) ([]model.User, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.users.List(ctx, filter)
}

// Get returns nil when no user has the id.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	if _, err := RequireAdmin(ctx); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return user, err
}

func (s *UserService) manageableUser(ctx context.Context, id string) (*model.User, error) {
	current, err := Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	if current.ID != id && !IsAdmin(current) {
		return nil, apperrors.ErrUserNotFound
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return target, nil
}

func (s *UserService) validateIdentity(ctx context.Context, v *apperrors.ValidationError, name, email, exceptID string) error {
	if requirePresent(v, "Name", name) {
		requireMaxLength(v, "Name", name, maxUserNameLength)
	}

	if !requirePresent(v, "Email", email) {
		return nil
	}
	normalized := repository.NormalizeEmail(email)
	if !auth.ValidEmail(normalized) {
		v.Add("Email is invalid")
		return nil
	}
	taken, err := s.users.EmailTaken(ctx, normalized, exceptID)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		v.Add(msgEmailTaken)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
