package payoutRepo

import "sync"

// providerLocks hands out one mutex per provider. The lock is process-local.
type providerLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func (p *providerLocks) with(providerID int64, fn func() error) error {
	p.mu.Lock()
	if p.locks == nil {
		p.locks = make(map[int64]*sync.Mutex)
	}
	l, ok := p.locks[providerID]
	if !ok {
		l = &sync.Mutex{}
		p.locks[providerID] = l
	}
	p.mu.Unlock()

	l.Lock()
	defer l.Unlock()
	return fn()
}
