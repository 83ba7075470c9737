package userRepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"servicehub/database/repository/sequence"
	"servicehub/models"
)

var _ UserRepository = (*MemoryUserRepo)(nil)

// MemoryUserRepo is an in-memory UserRepository keyed by id with an email index.
type MemoryUserRepo struct {
	mu      sync.RWMutex
	users   map[int64]models.User
	byEmail map[string]int64
	ids     sequence.Sequence
	now     func() time.Time
}

// NewMemoryUserRepo creates an empty repository.
func NewMemoryUserRepo(ids sequence.Sequence) *MemoryUserRepo {
	return &MemoryUserRepo{
		users:   make(map[int64]models.User),
		byEmail: make(map[string]int64),
		ids:     ids,
		now:     time.Now,
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Seed loads users with their ids as given and moves the id sequence past them.
func (r *MemoryUserRepo) Seed(users ...models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range users {
		r.users[u.ID] = u
		r.byEmail[emailKey(u.Email)] = u.ID
	}
	_ = sequence.AdvancePast(context.Background(), r.ids, MaxID(users))
}

// List returns every account ordered by id.
func (r *MemoryUserRepo) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryUserRepo) Create(ctx context.Context, u models.User) (*models.User, error) {
	key := emailKey(u.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[key]; taken {
		return nil, models.ErrAlreadyExists
	}
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	u.ID = id
	now := r.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[id] = u
	r.byEmail[key] = id
	return &u, nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, models.ErrNotFound
	}
	u := r.users[id]
	return &u, nil
}

func (r *MemoryUserRepo) Mutate(_ context.Context, id int64, fn func(u *models.User) error) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if err := fn(&u); err != nil {
		return nil, err
	}
	u.ID = id
	u.UpdatedAt = r.now()
	r.users[id] = u
	return &u, nil
}
