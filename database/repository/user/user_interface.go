package userRepo

import (
	"context"

	"servicehub/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create stores a user under a fresh id; a taken email yields models.ErrAlreadyExists.
	Create(ctx context.Context, u models.User) (*models.User, error)
	// GetByID retrieves a user or models.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// GetByEmail retrieves a user by email (case-insensitive) or models.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Mutate applies fn under the store's write lock.
	Mutate(ctx context.Context, id int64, fn func(u *models.User) error) (*models.User, error)
	// List returns every account ordered by id.
	List(ctx context.Context) ([]models.User, error)
}

// MaxID returns the highest id in users.
func MaxID(users []models.User) int64 {
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max
}
