package user

import (
	"context"
	"time"

	userRepo "servicehub/database/repository/user"
	"servicehub/models"
)

type UserService interface {
	// Authentication
	Register(ctx context.Context, reg models.Registration) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)

	// Profile
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, patch models.ProfilePatch) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	TokenTTL time.Duration
}

var _ UserService = (*DefaultUserService)(nil)

// NewUserService wires a user service with the given token lifetime.
func NewUserService(repo userRepo.UserRepository, tokenTTL time.Duration) *DefaultUserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &DefaultUserService{Repo: repo, TokenTTL: tokenTTL}
}
