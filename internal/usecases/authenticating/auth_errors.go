package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured   = errors.New("auth secret not configured")
	ErrInvalidToken    = errors.New("invalid token")
	ErrMissingSubject  = errors.New("token subject is required")
	ErrUnsupportedRole = errors.New("unsupported role")
)

// AuthError carries the API error code to answer with.
type AuthError struct {
	Err     error
	Code    string
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

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
