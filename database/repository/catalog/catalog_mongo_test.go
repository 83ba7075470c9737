package catalogRepo

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"servicehub/database/mongotest"
	"servicehub/database/repository/sequence"
	"servicehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	mongotest.Terminate()
	os.Exit(code)
}

func newMongoRepo(t *testing.T) *MongoCatalogRepo {
	t.Helper()
	db := mongotest.Database(t)
	repo, err := NewMongoCatalogRepo(db, sequence.NewMongoCounter(db, "services"))
	require.NoError(t, err)
	return repo
}

func TestMongoCatalogRepo_SeedIfEmpty(t *testing.T) {
	repo := newMongoRepo(t)
	ctx := context.Background()
	seed := DefaultServices(time.Now().UTC().Truncate(time.Millisecond))

	seeded, err := repo.SeedIfEmpty(ctx, seed)
	require.NoError(t, err)
	assert.True(t, seeded)
	seeded, err = repo.SeedIfEmpty(ctx, seed)
	require.NoError(t, err)
	assert.False(t, seeded, "a populated collection is left alone")

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(seed))
	assert.Equal(t, seed[1].Title, all[1].Title)
	assert.Equal(t, models.ServiceApproved, all[1].Status)

	created, err := repo.Insert(ctx, models.Service{Title: "Dog Walking"})
	require.NoError(t, err)
	assert.Equal(t, MaxServiceID(seed)+1, created.ID, "ids continue after the fixture")

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMongoCatalogRepo_ConcurrentMutate(t *testing.T) {
	repo := newMongoRepo(t)
	ctx := context.Background()
	_, err := repo.SeedIfEmpty(ctx, DefaultServices(time.Now().UTC()))
	require.NoError(t, err)

	const writers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Mutate(ctx, 5, func(svc *models.Service) error {
				svc.Views++
				return nil
			})
			if err != nil {
				assert.ErrorIs(t, err, models.ErrConflict)
				return
			}
			mu.Lock()
			succeeded++
			mu.Unlock()
		}()
	}
	wg.Wait()

	svc, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	require.Positive(t, succeeded)
	assert.Equal(t, 567+succeeded, svc.Views, "every acknowledged write is applied exactly once")
	assert.Equal(t, int64(1+succeeded), svc.Version)
}

func TestMongoCatalogRepo_UpdateAndDelete(t *testing.T) {
	repo := newMongoRepo(t)
	ctx := context.Background()
	_, err := repo.SeedIfEmpty(ctx, DefaultServices(time.Now().UTC()))
	require.NoError(t, err)

	price := 99.0
	got, err := repo.Update(ctx, 2, models.ServicePatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 99.0, got.Price)
	assert.Equal(t, "Home Cleaning Service", got.Title)

	removed, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.Update(ctx, 2, models.ServicePatch{Price: &price})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
