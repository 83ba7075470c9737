package booking

import (
	"context"
	"errors"

	"servicehub/models"
)

// SaveService bookmarks a listing. It reports false if it was already saved.
func (s *DefaultBookingService) SaveService(ctx context.Context, userID, serviceID int64) (bool, error) {
	if _, err := s.Catalog.GetByID(ctx, serviceID); err != nil {
		return false, err
	}
	return s.Saved.Save(ctx, userID, serviceID)
}

func (s *DefaultBookingService) UnsaveService(ctx context.Context, userID, serviceID int64) (bool, error) {
	return s.Saved.Remove(ctx, userID, serviceID)
}

// ListSavedServices returns the saved listings, newest bookmark first.
// Listings deleted since they were saved are skipped.
func (s *DefaultBookingService) ListSavedServices(ctx context.Context, userID int64) ([]models.Service, error) {
	saved, err := s.Saved.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Service, 0, len(saved))
	for _, entry := range saved {
		svc, err := s.Catalog.GetByID(ctx, entry.ServiceID)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *svc)
	}
	return out, nil
}
