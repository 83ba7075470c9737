package quotationRepo

import (
	"context"
	"errors"
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

func TestMongoQuotationRepo_Lifecycle(t *testing.T) {
	db := mongotest.Database(t)
	ctx := context.Background()
	repo, err := NewMongoQuotationRepo(db, sequence.NewMongoCounter(db, "quotations"))
	require.NoError(t, err)

	first, err := repo.Create(ctx, models.Quotation{ServiceID: 1, Customer: models.Party{ID: 1}, Provider: models.Party{ID: 2}, Status: models.QuotationPending})
	require.NoError(t, err)
	second, err := repo.Create(ctx, models.Quotation{ServiceID: 3, Customer: models.Party{ID: 1}, Provider: models.Party{ID: 4}, Status: models.QuotationPending})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	mine, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID, "newest first")

	theirs, err := repo.ListByProvider(ctx, 4)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, second.ID, theirs[0].ID)

	updated, err := repo.Mutate(ctx, first.ID, func(q *models.Quotation) error {
		q.Status = models.QuotationAccepted
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.QuotationAccepted, updated.Status)
	assert.Equal(t, int64(2), updated.Version)

	boom := errors.New("boom")
	_, err = repo.Mutate(ctx, first.ID, func(q *models.Quotation) error { return boom })
	assert.ErrorIs(t, err, boom)
	stored, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuotationAccepted, stored.Status)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, models.ErrNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
