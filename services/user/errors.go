package user

import (
	"errors"
	"fmt"

	"servicehub/models"
)

const MinPasswordLength = 6

var (
	ErrNotFound           = models.ErrNotFound
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	ErrAccountSuspended   = errors.New("account is suspended")
)

// ValidationError reports a malformed registration or profile field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
