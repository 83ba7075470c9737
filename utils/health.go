package utils

import (
	"context"
	"sort"
	"sync"
	"time"
)

// HealthCheck pings one backing service.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string          `json:"status"`
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{Status: "ok", Checks: map[string]bool{}}
	checks        = map[string]HealthCheck{}
	mu            sync.RWMutex
)

// RegisterHealthCheck adds a named dependency to the monitor.
func RegisterHealthCheck(name string, check HealthCheck) {
	mu.Lock()
	defer mu.Unlock()
	checks[name] = check
}

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	out := currentHealth
	out.Checks = make(map[string]bool, len(currentHealth.Checks))
	for k, v := range currentHealth.Checks {
		out.Checks[k] = v
	}
	return out
}

// CheckHealth runs every registered check once and stores the result.
func CheckHealth(ctx context.Context) HealthStatus {
	mu.RLock()
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	snapshot := make(map[string]HealthCheck, len(checks))
	for k, v := range checks {
		snapshot[k] = v
	}
	mu.RUnlock()
	sort.Strings(names)

	status := HealthStatus{Status: "ok", Checks: make(map[string]bool, len(names)), CheckedAt: time.Now()}
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		ok := snapshot[name](cctx) == nil
		cancel()
		status.Checks[name] = ok
		if !ok {
			status.Status = "degraded"
		}
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		CheckHealth(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx)
			}
		}
	}()
}
