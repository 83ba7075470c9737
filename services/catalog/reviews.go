package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"servicehub/models"
	"servicehub/utils"
)

// Defaults for anonymous reviews.
const (
	AnonymousUserID int64 = 1
	AnonymousName         = "You"
)

// AddReview prepends a review and folds its rating into the running mean in
// one atomic store mutation.
func (s *DefaultCatalogService) AddReview(ctx context.Context, serviceID int64, in models.ReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidReview
	}
	if in.UserID == 0 {
		in.UserID = AnonymousUserID
	}
	if strings.TrimSpace(in.Name) == "" {
		in.Name = AnonymousName
	}

	var review models.Review
	_, err := s.Repo.Mutate(ctx, serviceID, func(svc *models.Service) error {
		id, err := s.ReviewIDs.Next(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate review id: %w", err)
		}
		review = models.Review{
			ID:      id,
			UserID:  in.UserID,
			Name:    in.Name,
			Rating:  in.Rating,
			Comment: in.Comment,
			Date:    s.now(),
			Avatar:  in.Avatar,
		}
		applyReview(svc, review)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// applyReview folds r into the aggregates. The mean is carried as an exact sum
// so the stored rating always equals round2(sum/count); for records that only
// carry a rounded rating the sum is recovered as rating*count, which gives
// round2((old*count + new) / (count+1)).
func applyReview(svc *models.Service, r models.Review) {
	if svc.RatingSum == 0 && svc.Reviews > 0 {
		svc.RatingSum = svc.Rating * float64(svc.Reviews)
	}
	svc.RatingSum += float64(r.Rating)
	svc.Reviews++
	svc.Rating = utils.Round2(svc.RatingSum / float64(svc.Reviews))
	svc.ReviewsList = append([]models.Review{r}, svc.ReviewsList...)
}

// ListByService returns a service's reviews newest first, or an empty list for an unknown service.
func (s *DefaultCatalogService) ListByService(ctx context.Context, serviceID int64) ([]models.Review, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return []models.Review{}, nil
		}
		return nil, err
	}
	if svc.ReviewsList == nil {
		return []models.Review{}, nil
	}
	return svc.ReviewsList, nil
}

// ListByUser collects a user's reviews across the catalog.
func (s *DefaultCatalogService) ListByUser(ctx context.Context, userID int64) ([]models.UserReview, error) {
	all, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	out := []models.UserReview{}
	for _, svc := range all {
		for _, r := range svc.ReviewsList {
			if r.UserID == userID {
				out = append(out, models.UserReview{Review: r, ServiceID: svc.ID, ServiceTitle: svc.Title})
			}
		}
	}
	return out, nil
}
