package user

import (
	"context"
	"errors"

	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the password and returns a fresh token. Suspended accounts
// are refused after a correct password.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Suspended() {
		return nil, ErrAccountSuspended
	}
	return s.issue(*u)
}
