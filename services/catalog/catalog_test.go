package catalog

import (
	"context"
	"testing"
	"time"

	catalogRepo "servicehub/database/repository/catalog"
	"servicehub/database/repository/sequence"
	"servicehub/models"
	"servicehub/services/geo"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*DefaultCatalogService, *catalogRepo.MemoryCatalogRepo) {
	t.Helper()
	repo := catalogRepo.NewMemoryCatalogRepo(sequence.NewCounter(0)).
		WithClock(func() time.Time { return fixedNow })
	seed := catalogRepo.DefaultServices(fixedNow)
	repo.Seed(seed...)
	svc := NewCatalogService(repo, geo.NewStaticResolver(geo.DefaultCities), sequence.NewCounter(catalogRepo.MaxReviewID(seed)))
	svc.Now = func() time.Time { return fixedNow }
	return svc, repo
}

func ids(services []models.Service) []int64 {
	out := make([]int64, 0, len(services))
	for _, s := range services {
		out = append(out, s.ID)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func mustSearch(t *testing.T, s *DefaultCatalogService, f models.ServiceFilter) []models.Service {
	t.Helper()
	out, err := s.Search(context.Background(), f)
	require.NoError(t, err)
	return out
}
