package earnings

import (
	"context"
	"errors"
	"time"

	bookingRepo "servicehub/database/repository/booking"
	catalogRepo "servicehub/database/repository/catalog"
	payoutRepo "servicehub/database/repository/payout"
	quotationRepo "servicehub/database/repository/quotation"
	"servicehub/models"
)

var (
	ErrInvalidAmount     = errors.New("payout amount must be positive")
	ErrInsufficientFunds = errors.New("payout exceeds available balance")
)

// Time ranges accepted by Report.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeAll   = "all"
)

type EarningsService interface {
	// Report returns totals and the transactions inside timeRange.
	Report(ctx context.Context, providerID int64, timeRange string) (*models.EarningsReport, error)
	RequestPayout(ctx context.Context, providerID int64, amount float64) (*models.Payout, error)
	ProviderStats(ctx context.Context, providerID int64) (*models.ProviderStats, error)
}

// DefaultEarningsService implements EarningsService.
type DefaultEarningsService struct {
	Bookings   bookingRepo.BookingRepository
	Payouts    payoutRepo.PayoutRepository
	Quotations quotationRepo.QuotationRepository
	Catalog    catalogRepo.CatalogRepository
	Now        func() time.Time
}

var _ EarningsService = (*DefaultEarningsService)(nil)

func (s *DefaultEarningsService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
