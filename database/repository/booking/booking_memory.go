package bookingRepo

import (
	"context"
	"sync"
	"time"

	"servicehub/database/repository/sequence"
	"servicehub/models"
)

var _ BookingRepository = (*MemoryBookingRepo)(nil)

// MemoryBookingRepo is an in-memory BookingRepository.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []models.Booking
	ids      sequence.Sequence
	now      func() time.Time
}

// NewMemoryBookingRepo creates an empty repository.
func NewMemoryBookingRepo(ids sequence.Sequence) *MemoryBookingRepo {
	return &MemoryBookingRepo{ids: ids, now: time.Now}
}

func (r *MemoryBookingRepo) Create(ctx context.Context, b models.Booking) (*models.Booking, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	b.ID = id
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.now()
	}
	r.mu.Lock()
	r.bookings = append(r.bookings, b)
	r.mu.Unlock()
	return &b, nil
}

func (r *MemoryBookingRepo) GetByID(_ context.Context, id int64) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryBookingRepo) Mutate(_ context.Context, id int64, fn func(b *models.Booking) error) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID != id {
			continue
		}
		work := r.bookings[i]
		if err := fn(&work); err != nil {
			return nil, err
		}
		work.ID = id
		r.bookings[i] = work
		return &work, nil
	}
	return nil, models.ErrNotFound
}

func (r *MemoryBookingRepo) list(match func(models.Booking) bool) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Booking{}
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if match(r.bookings[i]) {
			out = append(out, r.bookings[i])
		}
	}
	return out
}

func (r *MemoryBookingRepo) ListByCustomer(_ context.Context, customerID int64) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.CustomerID == customerID }), nil
}

func (r *MemoryBookingRepo) ListByProvider(_ context.Context, providerID int64) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.Provider.ID == providerID }), nil
}

func (r *MemoryBookingRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	return r.list(func(models.Booking) bool { return true }), nil
}

var _ SavedServiceRepository = (*MemorySavedServiceRepo)(nil)

// MemorySavedServiceRepo is an in-memory SavedServiceRepository.
type MemorySavedServiceRepo struct {
	mu    sync.RWMutex
	saved map[int64][]models.SavedService
	now   func() time.Time
}

// NewMemorySavedServiceRepo creates an empty repository.
func NewMemorySavedServiceRepo() *MemorySavedServiceRepo {
	return &MemorySavedServiceRepo{saved: make(map[int64][]models.SavedService), now: time.Now}
}

func (r *MemorySavedServiceRepo) Save(_ context.Context, userID, serviceID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.saved[userID] {
		if s.ServiceID == serviceID {
			return false, nil
		}
	}
	entry := models.SavedService{UserID: userID, ServiceID: serviceID, SavedAt: r.now()}
	r.saved[userID] = append([]models.SavedService{entry}, r.saved[userID]...)
	return true, nil
}

func (r *MemorySavedServiceRepo) Remove(_ context.Context, userID, serviceID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.saved[userID]
	for i, s := range list {
		if s.ServiceID == serviceID {
			r.saved[userID] = append(list[:i:i], list[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemorySavedServiceRepo) List(_ context.Context, userID int64) ([]models.SavedService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.SavedService, len(r.saved[userID]))
	copy(out, r.saved[userID])
	return out, nil
}
