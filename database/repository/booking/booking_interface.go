package bookingRepo

import (
	"context"

	"servicehub/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create stores a booking under a fresh id.
	Create(ctx context.Context, b models.Booking) (*models.Booking, error)
	// GetByID retrieves a booking or models.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	// Mutate applies fn under the store's write lock.
	Mutate(ctx context.Context, id int64, fn func(b *models.Booking) error) (*models.Booking, error)
	// ListByCustomer returns a customer's bookings, newest first.
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error)
	// ListByProvider returns a provider's bookings, newest first.
	ListByProvider(ctx context.Context, providerID int64) ([]models.Booking, error)
	// ListAll returns every booking, newest first.
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// SavedServiceRepository keeps customers' bookmarked listings.
type SavedServiceRepository interface {
	// Save bookmarks a service; saving twice is a no-op. Reports whether it was added.
	Save(ctx context.Context, userID, serviceID int64) (bool, error)
	// Remove drops a bookmark and reports whether one existed.
	Remove(ctx context.Context, userID, serviceID int64) (bool, error)
	// List returns a user's bookmarks, newest first.
	List(ctx context.Context, userID int64) ([]models.SavedService, error)
}
