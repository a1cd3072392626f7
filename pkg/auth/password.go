package auth

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// bcrypt rejects longer input
	MaxPasswordBytes = 72
)

var (
	ErrPasswordMissing      = errors.New("Password must be present")
	ErrConfirmationMissing  = errors.New("Password confirmation must be present")
	ErrConfirmationMismatch = errors.New("Password and confirmation do not match")
	ErrPasswordTooShort     = fmt.Errorf("Password must be at least %d characters long", MinPasswordLength)
	ErrPasswordTooLong      = fmt.Errorf("Password is too long (maximum is %d bytes)", MaxPasswordBytes)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// PasswordManager handles password hashing
type PasswordManager struct {
	cost int
}

func NewPasswordManager(cost int) *PasswordManager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordManager{cost: cost}
}

func (pm *PasswordManager) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), pm.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (pm *PasswordManager) ComparePassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordPair enforces the password policy and reports the first
// rule that fails.
func ValidatePasswordPair(password, confirmation string) error {
	switch {
	case password == "":
		return ErrPasswordMissing
	case confirmation == "":
		return ErrConfirmationMissing
	case password != confirmation:
		return ErrConfirmationMismatch
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

func ValidEmail(email string) bool {
	return len(email) <= 100 && emailRegex.MatchString(email)
}
