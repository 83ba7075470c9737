package quotationRepo

import (
	"context"
	"sync"
	"time"

	"servicehub/database/repository/sequence"
	"servicehub/models"
)

var _ QuotationRepository = (*MemoryQuotationRepo)(nil)

// MemoryQuotationRepo is an in-memory QuotationRepository.
type MemoryQuotationRepo struct {
	mu         sync.RWMutex
	quotations []models.Quotation
	ids        sequence.Sequence
	now        func() time.Time
}

// NewMemoryQuotationRepo creates an empty repository.
func NewMemoryQuotationRepo(ids sequence.Sequence) *MemoryQuotationRepo {
	return &MemoryQuotationRepo{ids: ids, now: time.Now}
}

func (r *MemoryQuotationRepo) Create(ctx context.Context, q models.Quotation) (*models.Quotation, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	q.ID = id
	now := r.now()
	q.CreatedAt = now
	q.UpdatedAt = now

	r.mu.Lock()
	r.quotations = append(r.quotations, q)
	r.mu.Unlock()
	return &q, nil
}

func (r *MemoryQuotationRepo) GetByID(_ context.Context, id int64) (*models.Quotation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.quotations {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryQuotationRepo) Mutate(_ context.Context, id int64, fn func(q *models.Quotation) error) (*models.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.quotations {
		if r.quotations[i].ID != id {
			continue
		}
		work := r.quotations[i]
		if err := fn(&work); err != nil {
			return nil, err
		}
		work.ID = id
		work.UpdatedAt = r.now()
		r.quotations[i] = work
		return &work, nil
	}
	return nil, models.ErrNotFound
}

func (r *MemoryQuotationRepo) list(match func(models.Quotation) bool) []models.Quotation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Quotation{}
	for i := len(r.quotations) - 1; i >= 0; i-- {
		if match(r.quotations[i]) {
			out = append(out, r.quotations[i])
		}
	}
	return out
}

func (r *MemoryQuotationRepo) ListByCustomer(_ context.Context, customerID int64) ([]models.Quotation, error) {
	return r.list(func(q models.Quotation) bool { return q.Customer.ID == customerID }), nil
}

func (r *MemoryQuotationRepo) ListByProvider(_ context.Context, providerID int64) ([]models.Quotation, error) {
	return r.list(func(q models.Quotation) bool { return q.Provider.ID == providerID }), nil
}

func (r *MemoryQuotationRepo) ListAll(_ context.Context) ([]models.Quotation, error) {
	return r.list(func(models.Quotation) bool { return true }), nil
}
