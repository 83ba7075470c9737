package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"servicehub/models"
	"servicehub/services/geo"
	"servicehub/utils"
)

// Search runs the catalog through the category, provider, location text and
// radius stages, then sorts. Stages whose input is absent are skipped.
// Rejected listings are dropped unless the filter asks for them.
func (s *DefaultCatalogService) Search(ctx context.Context, f models.ServiceFilter) ([]models.Service, error) {
	all, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	out := make([]models.Service, 0, len(all))
	for _, svc := range all {
		if svc.Status == models.ServiceRejected && !f.IncludeRejected {
			continue
		}
		if f.Category != "" && f.Category != models.CategoryAll && svc.Category != f.Category {
			continue
		}
		if f.ProviderID != nil && svc.ProviderID != *f.ProviderID {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(svc.Location), strings.ToLower(f.Location)) {
			continue
		}
		out = append(out, svc)
	}

	center := geo.ResolvePoint(ctx, s.Geo, models.PointQuery{Lat: f.Lat, Lon: f.Lon, City: f.Location})
	if center != nil {
		out = s.withinRadius(ctx, out, center, s.radius(f.RadiusKm))
	}

	SortServices(out, f.SortBy)
	return out, nil
}

func (s *DefaultCatalogService) radius(requested *float64) float64 {
	if requested != nil && utils.IsFinite(*requested) && *requested > 0 {
		return *requested
	}
	if s.RadiusKm > 0 {
		return s.RadiusKm
	}
	return DefaultRadiusKm
}

// withinRadius keeps services whose own location, or else their provider's,
// resolves to a point no farther than radiusKm from center.
func (s *DefaultCatalogService) withinRadius(ctx context.Context, in []models.Service, center *models.Point, radiusKm float64) []models.Service {
	out := in[:0]
	for _, svc := range in {
		p := geo.ResolvePoint(ctx, s.Geo, models.PointQuery{City: svc.Location})
		if p == nil {
			p = geo.ResolvePoint(ctx, s.Geo, models.PointQuery{City: svc.Provider.Location})
		}
		if geo.DistanceKm(center, p) <= radiusKm {
			out = append(out, svc)
		}
	}
	return out
}

// SortServices orders services in place. Ties keep their incoming order.
func SortServices(services []models.Service, key models.SortKey) {
	var less func(a, b models.Service) bool
	switch key {
	case models.SortByRating:
		less = func(a, b models.Service) bool { return a.Rating > b.Rating }
	case models.SortByPriceLow:
		less = func(a, b models.Service) bool { return a.Price < b.Price }
	case models.SortByPriceHigh:
		less = func(a, b models.Service) bool { return a.Price > b.Price }
	default:
		less = func(a, b models.Service) bool { return a.Reviews > b.Reviews }
	}
	sort.SliceStable(services, func(i, j int) bool {
		return less(services[i], services[j])
	})
}
