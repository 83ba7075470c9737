package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypts a plain password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func validateRegistration(reg models.Registration) error {
	if strings.TrimSpace(reg.Name) == "" {
		return ValidationError{Field: "name", Message: "is required"}
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(reg.Email)); err != nil {
		return ValidationError{Field: "email", Message: "is not a valid address"}
	}
	if len(reg.Password) < MinPasswordLength {
		return ErrWeakPassword
	}
	switch reg.Role {
	case models.RoleCustomer, models.RoleProvider:
	default:
		return ValidationError{Field: "role", Message: "must be customer or provider"}
	}
	return nil
}

// Register creates an account and signs the new user in.
func (s *DefaultUserService) Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error) {
	reg.Role = strings.ToLower(strings.TrimSpace(reg.Role))
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	hash, err := HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}
	created, err := s.Repo.Create(ctx, models.User{
		Name:         strings.TrimSpace(reg.Name),
		Email:        strings.ToLower(strings.TrimSpace(reg.Email)),
		PasswordHash: hash,
		Role:         reg.Role,
		Status:       models.UserActive,
	})
	if errors.Is(err, models.ErrAlreadyExists) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		utils.GetLogger().Error("Register: failed to store user", zap.String("email", reg.Email), zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return s.issue(*created)
}

func (s *DefaultUserService) issue(u models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{User: u, Token: token}, nil
}
