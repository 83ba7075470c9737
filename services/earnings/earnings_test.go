package earnings

import (
	"context"
	"sync"
	"testing"
	"time"

	bookingRepo "servicehub/database/repository/booking"
	catalogRepo "servicehub/database/repository/catalog"
	payoutRepo "servicehub/database/repository/payout"
	quotationRepo "servicehub/database/repository/quotation"
	"servicehub/database/repository/sequence"
	"servicehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *DefaultEarningsService
	bookings *bookingRepo.MemoryBookingRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := catalogRepo.NewMemoryCatalogRepo(sequence.NewCounter(0))
	catalog.Seed(catalogRepo.DefaultServices(now)...)
	f := &fixture{bookings: bookingRepo.NewMemoryBookingRepo(sequence.NewCounter(0))}
	f.svc = &DefaultEarningsService{
		Bookings:   f.bookings,
		Payouts:    payoutRepo.NewMemoryPayoutRepo(),
		Quotations: quotationRepo.NewMemoryQuotationRepo(sequence.NewCounter(0)),
		Catalog:    catalog,
		Now:        func() time.Time { return now },
	}
	return f
}

// add stores a booking for provider 2. A nil paidAt leaves it unpaid.
func (f *fixture) add(t *testing.T, amount float64, created time.Time, paidAt *time.Time, status models.BookingStatus) {
	t.Helper()
	b := models.Booking{
		ServiceTitle:  "Professional Web Development",
		CustomerID:    1,
		Provider:      models.Party{ID: 2, Name: "Jane Provider"},
		Amount:        amount,
		Status:        status,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     created,
	}
	if paidAt != nil {
		b.PaymentStatus = models.PaymentPaid
		b.PaidAt = paidAt
	}
	_, err := f.bookings.Create(context.Background(), b)
	require.NoError(t, err)
}

func at(t time.Time) *time.Time { return &t }

func seedLedger(t *testing.T, f *fixture) {
	t.Helper()
	f.add(t, 1500, now.AddDate(0, 0, -3), at(now.AddDate(0, 0, -2)), models.BookingCompleted)  // this month, this week
	f.add(t, 800, now.AddDate(0, 0, -20), at(now.AddDate(0, 0, -20)), models.BookingCompleted) // last month
	f.add(t, 450, now.AddDate(0, -3, 0), at(now.AddDate(0, -3, 0)), models.BookingCompleted)   // older
	f.add(t, 850, now.AddDate(0, 0, -1), nil, models.BookingCompleted)                         // pending
	f.add(t, 999, now.AddDate(0, 0, -1), nil, models.BookingCancelled)                         // ignored
}

func TestReport_Totals(t *testing.T) {
	f := newFixture(t)
	seedLedger(t, f)

	report, err := f.svc.Report(context.Background(), 2, RangeAll)
	require.NoError(t, err)
	assert.Equal(t, models.EarningsSummary{
		Total:     2750,
		ThisMonth: 1500,
		LastMonth: 800,
		Pending:   850,
		Available: 2750,
	}, report.Earnings)
	require.Len(t, report.Transactions, 4)
	assert.Equal(t, "pending", report.Transactions[0].Status, "newest first")
	assert.Equal(t, 450.0, report.Transactions[3].Amount)
}

func TestReport_TimeRange(t *testing.T) {
	f := newFixture(t)
	seedLedger(t, f)
	ctx := context.Background()

	week, err := f.svc.Report(ctx, 2, RangeWeek)
	require.NoError(t, err)
	assert.Len(t, week.Transactions, 2)

	month, err := f.svc.Report(ctx, 2, RangeMonth)
	require.NoError(t, err)
	assert.Len(t, month.Transactions, 3)

	fallback, err := f.svc.Report(ctx, 2, "fortnight")
	require.NoError(t, err)
	assert.Equal(t, month.Transactions, fallback.Transactions)

	other, err := f.svc.Report(ctx, 9, RangeAll)
	require.NoError(t, err)
	assert.Empty(t, other.Transactions)
	assert.Zero(t, other.Earnings.Total)
}

func TestRequestPayout(t *testing.T) {
	f := newFixture(t)
	seedLedger(t, f)
	ctx := context.Background()

	for _, amount := range []float64{0, -5} {
		_, err := f.svc.RequestPayout(ctx, 2, amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}

	p, err := f.svc.RequestPayout(ctx, 2, 2000)
	require.NoError(t, err)
	assert.Len(t, p.ID, 36)
	assert.Equal(t, 2000.0, p.Amount)

	_, err = f.svc.RequestPayout(ctx, 2, 750.01)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	report, err := f.svc.Report(ctx, 2, RangeAll)
	require.NoError(t, err)
	assert.Equal(t, 750.0, report.Earnings.Available)
	assert.Equal(t, 2750.0, report.Earnings.Total)
	assert.Equal(t, models.TransactionPayout, report.Transactions[0].Type)
}

func TestRequestPayout_ConcurrentNeverOverdraws(t *testing.T) {
	f := newFixture(t)
	f.add(t, 100, now, at(now), models.BookingCompleted)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.RequestPayout(context.Background(), 2, 30); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, succeeded)
}

func TestProviderStats(t *testing.T) {
	f := newFixture(t)
	seedLedger(t, f)
	ctx := context.Background()

	for _, status := range []models.QuotationStatus{models.QuotationPending, models.QuotationAccepted, models.QuotationAccepted, models.QuotationRejected} {
		_, err := f.svc.Quotations.Create(ctx, models.Quotation{Provider: models.Party{ID: 2}, Status: status})
		require.NoError(t, err)
	}
	_, err := f.svc.Catalog.Insert(ctx, models.Service{Title: "Landing Pages", ProviderID: 2, Category: "tech"})
	require.NoError(t, err)

	stats, err := f.svc.ProviderStats(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &models.ProviderStats{
		TotalEarnings:     2750,
		PendingQuotations: 1,
		ActiveProjects:    2,
		AverageRating:     4.9,
		ServicesCount:     2,
	}, stats)
}
