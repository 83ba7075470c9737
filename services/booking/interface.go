package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingRepo "servicehub/database/repository/booking"
	catalogRepo "servicehub/database/repository/catalog"
	quotationRepo "servicehub/database/repository/quotation"
	"servicehub/models"
)

var (
	ErrNotFound         = models.ErrNotFound
	ErrAlreadyPaid      = errors.New("booking is already paid")
	ErrBookingCancelled = errors.New("booking is cancelled")
	ErrPaymentFailed    = errors.New("payment failed")
)

// Notifier delivers in-app notifications about booking events.
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, message, link string) error
}

// BookingService covers the customer side after a quotation completes.
type BookingService interface {
	ListCustomerBookings(ctx context.Context, customerID int64) ([]models.Booking, error)
	ListProviderBookings(ctx context.Context, providerID int64) ([]models.Booking, error)
	// Pay charges a pending booking. Bookings of other customers read as not found.
	Pay(ctx context.Context, customerID, bookingID int64, paymentMethod string) (*models.Booking, *models.PaymentReceipt, error)

	SaveService(ctx context.Context, userID, serviceID int64) (bool, error)
	UnsaveService(ctx context.Context, userID, serviceID int64) (bool, error)
	ListSavedServices(ctx context.Context, userID int64) ([]models.Service, error)

	CustomerStats(ctx context.Context, customerID int64) (*models.CustomerStats, error)
	// Activity lists the customer's latest quotation events, most recent first.
	Activity(ctx context.Context, customerID int64, limit int) ([]models.ActivityItem, error)
	// Recommendations suggests top-rated listings the customer has not asked about.
	Recommendations(ctx context.Context, customerID int64, limit int) ([]models.Recommendation, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Saved      bookingRepo.SavedServiceRepository
	Catalog    catalogRepo.CatalogRepository
	Quotations quotationRepo.QuotationRepository
	Gateway    PaymentGateway
	Notifier   Notifier
	Now        func() time.Time

	payLocks sync.Map // booking id -> *sync.Mutex
}

var _ BookingService = (*DefaultBookingService)(nil)

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
