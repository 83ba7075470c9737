package quotation

import (
	"context"
	"sync"
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

type sentNotification struct {
	UserID int64
	Title  string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(_ context.Context, userID int64, title, _, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{UserID: userID, Title: title})
	return nil
}

var customer = models.User{ID: 1, Name: "John Customer", Role: models.RoleCustomer}

func newService(t *testing.T) (*DefaultQuotationService, *recordingNotifier, *bookingRepo.MemoryBookingRepo) {
	t.Helper()
	catalog := catalogRepo.NewMemoryCatalogRepo(sequence.NewCounter(0))
	catalog.Seed(catalogRepo.DefaultServices(time.Now())...)
	bookings := bookingRepo.NewMemoryBookingRepo(sequence.NewCounter(0))
	notifier := &recordingNotifier{}
	return &DefaultQuotationService{
		Repo:     quotationRepo.NewMemoryQuotationRepo(sequence.NewCounter(0)),
		Catalog:  catalog,
		Bookings: bookings,
		Notifier: notifier,
		Currency: "usd",
	}, notifier, bookings
}

func request(t *testing.T, s *DefaultQuotationService) *models.Quotation {
	t.Helper()
	q, err := s.Request(context.Background(), customer, models.QuotationRequest{ServiceID: 1, Details: "Landing page", Budget: 1800})
	require.NoError(t, err)
	return q
}

func TestRequest(t *testing.T) {
	s, notifier, _ := newService(t)

	q := request(t, s)
	assert.Equal(t, models.QuotationPending, q.Status)
	assert.Equal(t, int64(2), q.Provider.ID)
	assert.Equal(t, "Jane Provider", q.Provider.Name)
	assert.Equal(t, "Professional Web Development", q.ServiceTitle)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, int64(2), notifier.sent[0].UserID)

	_, err := s.Request(context.Background(), customer, models.QuotationRequest{ServiceID: 999, Details: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Request(context.Background(), customer, models.QuotationRequest{ServiceID: 1, Details: "  "})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRespondThenComplete(t *testing.T) {
	s, notifier, bookings := newService(t)
	ctx := context.Background()
	q := request(t, s)

	_, err := s.Respond(ctx, 3, q.ID, models.QuotationResponse{Response: "ok", QuotedPrice: 1}) // not the provider
	assert.ErrorIs(t, err, ErrForbidden)

	accepted, err := s.Respond(ctx, 2, q.ID, models.QuotationResponse{Response: "Can do", QuotedPrice: 2000, EstimatedDuration: "3 weeks"})
	require.NoError(t, err)
	assert.Equal(t, models.QuotationAccepted, accepted.Status)
	require.NotNil(t, accepted.QuotedPrice)
	assert.Equal(t, 2000.0, *accepted.QuotedPrice)

	_, _, err = s.Complete(ctx, 99, q.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	done, booking, err := s.Complete(ctx, customer.ID, q.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuotationCompleted, done.Status)
	assert.Equal(t, 2000.0, booking.Amount)
	assert.Equal(t, models.PaymentPending, booking.PaymentStatus)
	assert.Equal(t, int64(2), booking.Provider.ID)

	list, err := bookings.ListByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Len(t, notifier.sent, 3)
}

func TestInvalidTransitions(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	q := request(t, s)
	_, _, err := s.Complete(ctx, customer.ID, q.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "pending cannot complete")

	_, err = s.Reject(ctx, 2, q.ID)
	require.NoError(t, err)
	_, err = s.Cancel(ctx, customer.ID, q.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition, "rejected is terminal")
	_, err = s.Respond(ctx, 2, q.ID, models.QuotationResponse{Response: "late", QuotedPrice: 5})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	q2 := request(t, s)
	_, err = s.Respond(ctx, 2, q2.ID, models.QuotationResponse{Response: "sure", QuotedPrice: 10})
	require.NoError(t, err)
	cancelled, err := s.Cancel(ctx, customer.ID, q2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuotationCancelled, cancelled.Status)

	_, err = s.Cancel(ctx, customer.ID, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteFallsBackToBudget(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()
	q := request(t, s)

	// Accepted without a stored price, e.g. a record created before quotedPrice was tracked.
	_, err := s.Repo.Mutate(ctx, q.ID, func(q *models.Quotation) error {
		q.Status = models.QuotationAccepted
		return nil
	})
	require.NoError(t, err)

	_, booking, err := s.Complete(ctx, customer.ID, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, booking.Amount)
}

func TestGet_Visibility(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()
	q := request(t, s)

	_, err := s.Get(ctx, customer.ID, q.ID)
	assert.NoError(t, err)
	_, err = s.Get(ctx, 2, q.ID)
	assert.NoError(t, err)
	_, err = s.Get(ctx, 5, q.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(models.QuotationPending, models.QuotationAccepted))
	assert.True(t, CanTransition(models.QuotationAccepted, models.QuotationCancelled))
	assert.False(t, CanTransition(models.QuotationCompleted, models.QuotationCancelled))
	assert.False(t, CanTransition(models.QuotationPending, models.QuotationCompleted))
}
