package payoutRepo

import (
	"context"
	"sync"
	"testing"
	"time"

	"servicehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPayoutRepo_ListNewestFirst(t *testing.T) {
	repo := NewMemoryPayoutRepo()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, models.Payout{ID: id, ProviderID: 2, Amount: 10, CreatedAt: time.Now()})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, models.Payout{ID: "x", ProviderID: 3})
	require.NoError(t, err)

	list, err := repo.ListByProvider(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "a", list[2].ID)
}

func TestMemoryPayoutRepo_WithProviderLockSerializes(t *testing.T) {
	repo := NewMemoryPayoutRepo()

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.WithProviderLock(2, func() error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}
