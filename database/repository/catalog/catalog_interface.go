package catalogRepo

import (
	"context"

	"servicehub/models"
)

// MutateFunc edits a service in place. Returning an error aborts the write.
type MutateFunc func(svc *models.Service) error

// CatalogRepository defines methods for service catalog data access.
// Lookups on unknown ids return models.ErrNotFound.
type CatalogRepository interface {
	// Insert stores a new service with a fresh id and zeroed aggregates.
	Insert(ctx context.Context, draft models.Service) (*models.Service, error)
	// GetByID retrieves a service by its id.
	GetByID(ctx context.Context, id int64) (*models.Service, error)
	// Update merges the provided fields into an existing service.
	Update(ctx context.Context, id int64, patch models.ServicePatch) (*models.Service, error)
	// Mutate runs fn against the current record and persists the result atomically.
	Mutate(ctx context.Context, id int64, fn MutateFunc) (*models.Service, error)
	// Delete removes a service and reports whether one was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// ListAll returns every service in insertion order.
	ListAll(ctx context.Context) ([]models.Service, error)
}
