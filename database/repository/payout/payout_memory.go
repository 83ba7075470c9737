package payoutRepo

import (
	"context"
	"sync"

	"servicehub/models"
)

var _ PayoutRepository = (*MemoryPayoutRepo)(nil)

// MemoryPayoutRepo is an in-memory PayoutRepository.
type MemoryPayoutRepo struct {
	mu      sync.RWMutex
	payouts []models.Payout
	locks   providerLocks
}

func NewMemoryPayoutRepo() *MemoryPayoutRepo {
	return &MemoryPayoutRepo{}
}

func (r *MemoryPayoutRepo) Create(_ context.Context, p models.Payout) (*models.Payout, error) {
	r.mu.Lock()
	r.payouts = append(r.payouts, p)
	r.mu.Unlock()
	return &p, nil
}

func (r *MemoryPayoutRepo) ListByProvider(_ context.Context, providerID int64) ([]models.Payout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Payout{}
	for i := len(r.payouts) - 1; i >= 0; i-- {
		if r.payouts[i].ProviderID == providerID {
			out = append(out, r.payouts[i])
		}
	}
	return out, nil
}

func (r *MemoryPayoutRepo) WithProviderLock(providerID int64, fn func() error) error {
	return r.locks.with(providerID, fn)
}
