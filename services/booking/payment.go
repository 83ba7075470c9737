package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) ListCustomerBookings(ctx context.Context, customerID int64) ([]models.Booking, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

func (s *DefaultBookingService) ListProviderBookings(ctx context.Context, providerID int64) ([]models.Booking, error) {
	return s.Repo.ListByProvider(ctx, providerID)
}

func (s *DefaultBookingService) lockBooking(id int64) func() {
	l, _ := s.payLocks.LoadOrStore(id, &sync.Mutex{})
	mu := l.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func payable(b *models.Booking) error {
	switch {
	case b.PaymentStatus == models.PaymentPaid:
		return ErrAlreadyPaid
	case b.Status == models.BookingCancelled:
		return ErrBookingCancelled
	}
	return nil
}

// Pay charges the booking amount once. Concurrent calls for the same booking
// are serialized so only one reaches the gateway.
func (s *DefaultBookingService) Pay(ctx context.Context, customerID, bookingID int64, paymentMethod string) (*models.Booking, *models.PaymentReceipt, error) {
	unlock := s.lockBooking(bookingID)
	defer unlock()

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b.CustomerID != customerID {
		return nil, nil, ErrNotFound
	}
	if err := payable(b); err != nil {
		return nil, nil, err
	}

	receipt, err := s.Gateway.Charge(ctx, models.ChargeRequest{
		BookingID:     b.ID,
		CustomerID:    customerID,
		Amount:        b.Amount,
		Currency:      b.Currency,
		PaymentMethod: paymentMethod,
		Description:   fmt.Sprintf("Booking %d: %s", b.ID, b.ServiceTitle),
	})
	if err != nil {
		utils.GetLogger().Error("Pay: charge failed", zap.Int64("bookingID", b.ID), zap.Error(err))
		if errors.Is(err, ErrPaymentFailed) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	paid, err := s.Repo.Mutate(ctx, b.ID, func(b *models.Booking) error {
		if err := payable(b); err != nil {
			return err
		}
		paidAt := receipt.PaidAt
		b.PaymentStatus = models.PaymentPaid
		b.PaymentRef = receipt.PaymentID
		b.PaidAt = &paidAt
		return nil
	})
	if err != nil {
		utils.GetLogger().Error("Pay: charged but failed to record payment",
			zap.Int64("bookingID", b.ID), zap.String("paymentID", receipt.PaymentID), zap.Error(err))
		return nil, nil, err
	}

	if s.Notifier != nil {
		msg := fmt.Sprintf("Payment of %.2f %s received for %s", paid.Amount, paid.Currency, paid.ServiceTitle)
		if err := s.Notifier.Notify(ctx, paid.Provider.ID, "Payment received", msg, "/provider/earnings"); err != nil {
			utils.GetLogger().Warn("Pay: notification failed", zap.Int64("bookingID", paid.ID), zap.Error(err))
		}
	}
	return paid, receipt, nil
}
