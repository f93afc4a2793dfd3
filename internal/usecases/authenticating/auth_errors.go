package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserDisabled          = errors.New("user account is disabled")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("expired token")
	ErrInsufficientPrivilege = errors.New("insufficient privileges")
	ErrUserAlreadyExists     = errors.New("user already exists")

	ErrInvalidRequest      = errors.New("invalid request")
	ErrMissingRequiredData = errors.New("missing required data")

	ErrWeakPassword      = errors.New("password does not meet strength requirements")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// AuthError carries the API error code alongside the base error so handlers
// can map it onto the standard error envelope.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports whether the error came from a failed login
// attempt rather than a server fault.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserNotFound)
}

func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
