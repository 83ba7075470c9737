package notificationRepo

import (
	"context"
	"sync"
	"time"

	"servicehub/database/repository/sequence"
	"servicehub/models"
)

var _ NotificationRepository = (*MemoryNotificationRepo)(nil)

// MemoryNotificationRepo is an in-memory NotificationRepository.
type MemoryNotificationRepo struct {
	mu    sync.RWMutex
	items []models.Notification
	ids   sequence.Sequence
	now   func() time.Time
}

func NewMemoryNotificationRepo(ids sequence.Sequence) *MemoryNotificationRepo {
	return &MemoryNotificationRepo{ids: ids, now: time.Now}
}

func (r *MemoryNotificationRepo) Create(ctx context.Context, n models.Notification) (*models.Notification, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	n.ID = id
	n.CreatedAt = r.now()
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
	return &n, nil
}

func (r *MemoryNotificationRepo) ListByUser(_ context.Context, userID int64) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Notification{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].UserID == userID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *MemoryNotificationRepo) MarkRead(_ context.Context, userID, id int64) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].UserID == userID {
			r.items[i].Read = true
			n := r.items[i]
			return &n, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *MemoryNotificationRepo) MarkAllRead(_ context.Context, userID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := 0
	for i := range r.items {
		if r.items[i].UserID == userID && !r.items[i].Read {
			r.items[i].Read = true
			changed++
		}
	}
	return changed, nil
}
