package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	catalogRepo "servicehub/database/repository/catalog"
	"servicehub/database/repository/sequence"
	"servicehub/models"
	"servicehub/services/geo"
)

// DefaultRadiusKm applies when a search gives no usable radius.
const DefaultRadiusKm = 25.0

// DefaultCatalogService implements CatalogService over a CatalogRepository.
type DefaultCatalogService struct {
	Repo      catalogRepo.CatalogRepository
	Geo       geo.CityResolver
	ReviewIDs sequence.Sequence
	// RadiusKm overrides DefaultRadiusKm when positive.
	RadiusKm float64
	Now      func() time.Time
}

var _ CatalogService = (*DefaultCatalogService)(nil)

// NewCatalogService wires a catalog service with the wall clock.
func NewCatalogService(repo catalogRepo.CatalogRepository, resolver geo.CityResolver, reviewIDs sequence.Sequence) *DefaultCatalogService {
	return &DefaultCatalogService{Repo: repo, Geo: resolver, ReviewIDs: reviewIDs, Now: time.Now}
}

func (s *DefaultCatalogService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id int64) (*models.Service, error) {
	return s.Repo.GetByID(ctx, id)
}

// CreateService stamps the owner's identity onto the draft and inserts it.
// New listings await moderation but are searchable right away.
func (s *DefaultCatalogService) CreateService(ctx context.Context, owner models.Provider, draft models.Service) (*models.Service, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" || draft.Price < 0 {
		return nil, ErrInvalidService
	}
	draft.ProviderID = owner.ID
	draft.Provider = owner
	draft.Status = models.ServicePending
	if draft.Location == "" {
		draft.Location = owner.Location
	}
	svc, err := s.Repo.Insert(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// UpdateService merges patch into a listing the owner holds.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, ownerID, id int64, patch models.ServicePatch) (*models.Service, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return nil, ErrInvalidService
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, ErrInvalidService
	}
	return s.Repo.Mutate(ctx, id, func(svc *models.Service) error {
		if svc.ProviderID != ownerID {
			return ErrForbidden
		}
		patch.Apply(svc)
		return nil
	})
}

// DeleteService removes a listing the owner holds.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, ownerID, id int64) error {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc.ProviderID != ownerID {
		return ErrForbidden
	}
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete service %d: %w", id, err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *DefaultCatalogService) ListProviderServices(ctx context.Context, ownerID int64) ([]models.Service, error) {
	return s.Search(ctx, models.ServiceFilter{ProviderID: &ownerID, SortBy: models.SortByPopularity, IncludeRejected: true})
}
