package payoutRepo

import (
	"context"

	"servicehub/models"
)

// PayoutRepository records provider withdrawals.
type PayoutRepository interface {
	Create(ctx context.Context, p models.Payout) (*models.Payout, error)
	// ListByProvider returns a provider's payouts, newest first.
	ListByProvider(ctx context.Context, providerID int64) ([]models.Payout, error)
	// WithProviderLock serializes balance checks and writes for one provider.
	WithProviderLock(providerID int64, fn func() error) error
}
