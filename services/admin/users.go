package admin

import (
	"context"
	"fmt"

	"servicehub/models"
)

func userSummary(u models.User) models.UserSummary {
	status := u.Status
	if status == "" {
		status = models.UserActive
	}
	return models.UserSummary{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Status:     status,
		JoinedDate: u.CreatedAt,
	}
}

// ListUsers returns every account ordered by id.
func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, userSummary(u))
	}
	return out, nil
}

func (s *DefaultAdminService) UserAction(ctx context.Context, userID int64, action string) (*models.UserSummary, error) {
	var status string
	switch action {
	case models.UserActionView:
		u, err := s.Users.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		summary := userSummary(*u)
		return &summary, nil
	case models.UserActionSuspend:
		status = models.UserSuspended
	case models.UserActionActivate:
		status = models.UserActive
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	u, err := s.Users.Mutate(ctx, userID, func(u *models.User) error {
		if status == models.UserSuspended && u.Role == models.RoleAdmin {
			return ErrProtectedAccount
		}
		u.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary := userSummary(*u)
	return &summary, nil
}
