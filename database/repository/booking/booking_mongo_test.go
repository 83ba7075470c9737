package bookingRepo

import (
	"context"
	"os"
	"testing"

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

func TestMongoBookingRepo(t *testing.T) {
	db := mongotest.Database(t)
	ctx := context.Background()
	repo, err := NewMongoBookingRepo(db, sequence.NewMongoCounter(db, "bookings"))
	require.NoError(t, err)

	b, err := repo.Create(ctx, models.Booking{CustomerID: 1, Provider: models.Party{ID: 2}, Amount: 100, PaymentStatus: models.PaymentPending})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Booking{CustomerID: 9, Provider: models.Party{ID: 2}, Amount: 50, PaymentStatus: models.PaymentPending})
	require.NoError(t, err)

	paid, err := repo.Mutate(ctx, b.ID, func(b *models.Booking) error {
		b.PaymentStatus = models.PaymentPaid
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, paid.PaymentStatus)

	mine, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.PaymentPaid, mine[0].PaymentStatus)

	providers, err := repo.ListByProvider(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, providers, 2)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMongoSavedServiceRepo(t *testing.T) {
	db := mongotest.Database(t)
	ctx := context.Background()
	repo, err := NewMongoSavedServiceRepo(db)
	require.NoError(t, err)

	added, err := repo.Save(ctx, 1, 3)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = repo.Save(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, added, "saving twice is a no-op")

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(3), list[0].ServiceID)

	removed, err := repo.Remove(ctx, 1, 3)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Remove(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, removed)
}
