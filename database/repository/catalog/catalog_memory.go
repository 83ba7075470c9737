package catalogRepo

import (
	"context"
	"sync"
	"time"

	"servicehub/database/repository/sequence"
	"servicehub/models"
)

var _ CatalogRepository = (*MemoryCatalogRepo)(nil)

// MemoryCatalogRepo keeps the catalog in a slice guarded by a RWMutex.
// Reads hand out deep copies so callers never alias stored records.
type MemoryCatalogRepo struct {
	mu       sync.RWMutex
	services []models.Service
	ids      sequence.Sequence
	now      func() time.Time
}

// NewMemoryCatalogRepo creates an empty catalog that draws ids from ids.
func NewMemoryCatalogRepo(ids sequence.Sequence) *MemoryCatalogRepo {
	return &MemoryCatalogRepo{ids: ids, now: time.Now}
}

// WithClock replaces the timestamp source.
func (r *MemoryCatalogRepo) WithClock(now func() time.Time) *MemoryCatalogRepo {
	r.now = now
	return r
}

// Seed loads records as-is, keeping their ids and aggregates. New inserts
// are numbered after the highest seeded id.
func (r *MemoryCatalogRepo) Seed(services ...models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range services {
		r.services = append(r.services, s.Clone())
	}
	_ = sequence.AdvancePast(context.Background(), r.ids, MaxServiceID(services))
}

func (r *MemoryCatalogRepo) Insert(ctx context.Context, draft models.Service) (*models.Service, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	svc := draft.Clone()
	svc.ID = id
	svc.Rating = 0
	svc.Reviews = 0
	svc.RatingSum = 0
	svc.Views = 0
	svc.ReviewsList = []models.Review{}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	now := r.now()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	svc.Version = 1

	r.mu.Lock()
	r.services = append(r.services, svc)
	r.mu.Unlock()

	out := svc.Clone()
	return &out, nil
}

// indexOf must be called with the lock held.
func (r *MemoryCatalogRepo) indexOf(id int64) int {
	for i := range r.services {
		if r.services[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryCatalogRepo) GetByID(_ context.Context, id int64) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrNotFound
	}
	out := r.services[i].Clone()
	return &out, nil
}

func (r *MemoryCatalogRepo) Update(ctx context.Context, id int64, patch models.ServicePatch) (*models.Service, error) {
	return r.Mutate(ctx, id, func(svc *models.Service) error {
		patch.Apply(svc)
		return nil
	})
}

func (r *MemoryCatalogRepo) Mutate(_ context.Context, id int64, fn MutateFunc) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrNotFound
	}
	work := r.services[i].Clone()
	if err := fn(&work); err != nil {
		return nil, err
	}
	work.ID = id
	work.UpdatedAt = r.now()
	work.Version++
	r.services[i] = work

	out := work.Clone()
	return &out, nil
}

func (r *MemoryCatalogRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.services = append(r.services[:i], r.services[i+1:]...)
	return true, nil
}

func (r *MemoryCatalogRepo) ListAll(_ context.Context) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Service, len(r.services))
	for i := range r.services {
		out[i] = r.services[i].Clone()
	}
	return out, nil
}
