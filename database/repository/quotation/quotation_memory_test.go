package quotationRepo

import (
	"context"
	"testing"

	"servicehub/database/repository/sequence"
	"servicehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQuotationRepo(t *testing.T) {
	repo := NewMemoryQuotationRepo(sequence.NewCounter(0))
	ctx := context.Background()

	q, err := repo.Create(ctx, models.Quotation{
		Customer: models.Party{ID: 1},
		Provider: models.Party{ID: 2},
		Status:   models.QuotationPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.ID)
	assert.False(t, q.CreatedAt.IsZero())

	updated, err := repo.Mutate(ctx, q.ID, func(q *models.Quotation) error {
		q.Status = models.QuotationAccepted
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.QuotationAccepted, updated.Status)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuotationAccepted, got.Status)

	byProvider, err := repo.ListByProvider(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, byProvider, 1)
	byCustomer, err := repo.ListByCustomer(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, byCustomer)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
