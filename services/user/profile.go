package user

import (
	"context"
	"strings"

	"servicehub/models"
)

func (s *DefaultUserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateProfile applies a partial profile update. Names cannot be blanked.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, id int64, patch models.ProfilePatch) (*models.User, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ValidationError{Field: "name", Message: "cannot be empty"}
		}
		patch.Name = &name
	}
	return s.Repo.Mutate(ctx, id, func(u *models.User) error {
		patch.Apply(u)
		return nil
	})
}
