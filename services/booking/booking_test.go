package booking

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	bookingRepo "servicehub/database/repository/booking"
	catalogRepo "servicehub/database/repository/catalog"
	quotationRepo "servicehub/database/repository/quotation"
	"servicehub/database/repository/sequence"
	"servicehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGateway struct {
	calls atomic.Int32
	err   error
}

func (g *countingGateway) Charge(ctx context.Context, req models.ChargeRequest) (*models.PaymentReceipt, error) {
	g.calls.Add(1)
	if g.err != nil {
		return nil, g.err
	}
	return MockGateway{}.Charge(ctx, req)
}

type fixture struct {
	svc        *DefaultBookingService
	gateway    *countingGateway
	bookings   *bookingRepo.MemoryBookingRepo
	quotations *quotationRepo.MemoryQuotationRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := catalogRepo.NewMemoryCatalogRepo(sequence.NewCounter(0))
	catalog.Seed(catalogRepo.DefaultServices(time.Now())...)
	f := &fixture{
		gateway:    &countingGateway{},
		bookings:   bookingRepo.NewMemoryBookingRepo(sequence.NewCounter(0)),
		quotations: quotationRepo.NewMemoryQuotationRepo(sequence.NewCounter(0)),
	}
	f.svc = &DefaultBookingService{
		Repo:       f.bookings,
		Saved:      bookingRepo.NewMemorySavedServiceRepo(),
		Catalog:    catalog,
		Quotations: f.quotations,
		Gateway:    f.gateway,
	}
	return f
}

func (f *fixture) booking(t *testing.T, customerID int64, amount float64, title string) *models.Booking {
	t.Helper()
	b, err := f.bookings.Create(context.Background(), models.Booking{
		ServiceID:     1,
		ServiceTitle:  title,
		CustomerID:    customerID,
		Provider:      models.Party{ID: 2, Name: "Jane Provider"},
		Amount:        amount,
		Currency:      "usd",
		Status:        models.BookingCompleted,
		PaymentStatus: models.PaymentPending,
	})
	require.NoError(t, err)
	return b
}

func TestPay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.booking(t, 1, 2000, "Professional Web Development")

	paid, receipt, err := f.svc.Pay(ctx, 1, b.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, receipt.PaymentID, paid.PaymentRef)
	assert.Contains(t, receipt.PaymentID, "pi_")
	require.NotNil(t, paid.PaidAt)

	_, _, err = f.svc.Pay(ctx, 1, b.ID, "")
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Equal(t, int32(1), f.gateway.calls.Load())
}

func TestPay_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.booking(t, 1, 50, "Logo Design")

	_, _, err := f.svc.Pay(ctx, 7, b.ID, "")
	assert.ErrorIs(t, err, ErrNotFound, "other customers cannot see the booking")

	_, _, err = f.svc.Pay(ctx, 1, 999, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.bookings.Mutate(ctx, b.ID, func(b *models.Booking) error {
		b.Status = models.BookingCancelled
		return nil
	})
	require.NoError(t, err)
	_, _, err = f.svc.Pay(ctx, 1, b.ID, "")
	assert.ErrorIs(t, err, ErrBookingCancelled)
	assert.Zero(t, f.gateway.calls.Load())
}

func TestPay_GatewayFailureLeavesBookingPending(t *testing.T) {
	f := newFixture(t)
	f.gateway.err = errors.New("card declined")
	ctx := context.Background()
	b := f.booking(t, 1, 50, "Logo Design")

	_, _, err := f.svc.Pay(ctx, 1, b.ID, "")
	assert.ErrorIs(t, err, ErrPaymentFailed)

	got, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, got.PaymentStatus)
}

func TestPay_ConcurrentChargesOnce(t *testing.T) {
	f := newFixture(t)
	b := f.booking(t, 1, 75, "SEO Audit")

	var wg sync.WaitGroup
	var ok atomic.Int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := f.svc.Pay(context.Background(), 1, b.ID, ""); err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(1), f.gateway.calls.Load())
}

func TestSavedServices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	added, err := f.svc.SaveService(ctx, 1, 3)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = f.svc.SaveService(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, added, "saving twice is a no-op")
	_, err = f.svc.SaveService(ctx, 1, 5)
	require.NoError(t, err)

	_, err = f.svc.SaveService(ctx, 1, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := f.svc.ListSavedServices(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].ID, "newest first")
	assert.Equal(t, int64(3), list[1].ID)

	removed, err := f.svc.UnsaveService(ctx, 1, 5)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = f.svc.UnsaveService(ctx, 1, 5)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = f.svc.Catalog.Delete(ctx, 3)
	require.NoError(t, err)
	list, err = f.svc.ListSavedServices(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCustomerStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, status := range []models.QuotationStatus{
		models.QuotationPending, models.QuotationPending, models.QuotationAccepted,
		models.QuotationCompleted, models.QuotationRejected,
	} {
		_, err := f.quotations.Create(ctx, models.Quotation{Customer: models.Party{ID: 1}, Status: status})
		require.NoError(t, err)
	}
	_, err := f.quotations.Create(ctx, models.Quotation{Customer: models.Party{ID: 9}, Status: models.QuotationPending})
	require.NoError(t, err)

	a := f.booking(t, 1, 100.10, "Logo Design")
	b := f.booking(t, 1, 200.20, "Logo Design")
	c := f.booking(t, 1, 500, "SEO Audit")
	f.booking(t, 1, 999, "Unpaid")
	for _, id := range []int64{a.ID, b.ID, c.ID} {
		_, _, err := f.svc.Pay(ctx, 1, id, "")
		require.NoError(t, err)
	}

	stats, err := f.svc.CustomerStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ActiveQuotations)
	assert.Equal(t, 2, stats.PendingResponses)
	assert.Equal(t, 1, stats.CompletedServices)
	assert.Equal(t, 800.3, stats.TotalSpent)
	require.Len(t, stats.Breakdown.ByService, 2)
	assert.Equal(t, models.SpendingEntry{Label: "SEO Audit", Amount: 500}, stats.Breakdown.ByService[0])
	assert.Equal(t, models.SpendingEntry{Label: "Logo Design", Amount: 300.3}, stats.Breakdown.ByService[1])
	require.Len(t, stats.Breakdown.ByMonth, 1)
	assert.Equal(t, 800.3, stats.Breakdown.ByMonth[0].Amount)
}

func TestActivity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.quotations.Create(ctx, models.Quotation{ServiceTitle: "Logo Design", Customer: models.Party{ID: 1}, Status: models.QuotationPending})
	require.NoError(t, err)
	_, err = f.quotations.Create(ctx, models.Quotation{ServiceTitle: "SEO Audit", Customer: models.Party{ID: 1}, Status: models.QuotationPending})
	require.NoError(t, err)
	_, err = f.quotations.Create(ctx, models.Quotation{ServiceTitle: "Other", Customer: models.Party{ID: 9}, Status: models.QuotationPending})
	require.NoError(t, err)
	_, err = f.quotations.Mutate(ctx, first.ID, func(q *models.Quotation) error {
		q.Status = models.QuotationCompleted
		return nil
	})
	require.NoError(t, err)

	items, err := f.svc.Activity(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID, "latest change first")
	assert.Equal(t, "Service Completed", items[0].Title)
	assert.Equal(t, "Logo Design", items[0].Service)
	assert.Equal(t, "completed", items[0].Status)
	assert.Equal(t, "Quotation Pending", items[1].Title)

	items, err = f.svc.Activity(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRecommendations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ids := func(recs []models.Recommendation) []int64 {
		out := make([]int64, 0, len(recs))
		for _, r := range recs {
			out = append(out, r.ID)
		}
		return out
	}

	recs, err := f.svc.Recommendations(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 5}, ids(recs))
	assert.Equal(t, 4.9, recs[0].Rating)
	assert.Equal(t, 2500.0, recs[0].Price)

	_, err = f.quotations.Create(ctx, models.Quotation{ServiceID: 3, Customer: models.Party{ID: 1}, Status: models.QuotationPending})
	require.NoError(t, err)
	_, err = f.svc.Catalog.Mutate(ctx, 5, func(svc *models.Service) error {
		svc.Status = models.ServiceRejected
		return nil
	})
	require.NoError(t, err)

	recs, err = f.svc.Recommendations(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 6}, ids(recs))

	recs, err = f.svc.Recommendations(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2}, ids(recs), "providers are not shown their own listings")
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), toMinorUnits(19.99))
	assert.Equal(t, int64(200000), toMinorUnits(2000))
}
