package earnings

import (
	"context"

	"servicehub/models"
	"servicehub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestPayout withdraws amount from the provider's available balance.
// Balance check and write run under the provider's lock.
func (s *DefaultEarningsService) RequestPayout(ctx context.Context, providerID int64, amount float64) (*models.Payout, error) {
	if !utils.IsFinite(amount) || amount <= 0 {
		return nil, ErrInvalidAmount
	}
	amount = utils.Round2(amount)

	var created *models.Payout
	err := s.Payouts.WithProviderLock(providerID, func() error {
		l, err := s.ledger(ctx, providerID)
		if err != nil {
			return err
		}
		if amount > l.summary.Available {
			return ErrInsufficientFunds
		}
		created, err = s.Payouts.Create(ctx, models.Payout{
			ID:         uuid.New().String(),
			ProviderID: providerID,
			Amount:     amount,
			Status:     "completed",
			CreatedAt:  s.now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Payout recorded",
		zap.Int64("providerID", providerID), zap.String("payoutID", created.ID), zap.Float64("amount", amount))
	return created, nil
}
