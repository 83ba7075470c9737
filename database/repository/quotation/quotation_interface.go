package quotationRepo

import (
	"context"

	"servicehub/models"
)

// QuotationRepository defines methods for quotation data access.
type QuotationRepository interface {
	// Create stores a quotation under a fresh id.
	Create(ctx context.Context, q models.Quotation) (*models.Quotation, error)
	// GetByID retrieves a quotation or models.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Quotation, error)
	// Mutate applies fn under the store's write lock.
	Mutate(ctx context.Context, id int64, fn func(q *models.Quotation) error) (*models.Quotation, error)
	// ListByCustomer returns a customer's quotations, newest first.
	ListByCustomer(ctx context.Context, customerID int64) ([]models.Quotation, error)
	// ListByProvider returns quotations addressed to a provider, newest first.
	ListByProvider(ctx context.Context, providerID int64) ([]models.Quotation, error)
	// ListAll returns every quotation, newest first.
	ListAll(ctx context.Context) ([]models.Quotation, error)
}
