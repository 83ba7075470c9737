package catalog

import (
	"context"

	"servicehub/models"
)

// CatalogService is the query and review surface over the service catalog.
type CatalogService interface {
	// Search filters and orders the catalog.
	Search(ctx context.Context, f models.ServiceFilter) ([]models.Service, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)

	// Provider-owned listings.
	CreateService(ctx context.Context, owner models.Provider, draft models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, ownerID, id int64, patch models.ServicePatch) (*models.Service, error)
	DeleteService(ctx context.Context, ownerID, id int64) error
	ListProviderServices(ctx context.Context, ownerID int64) ([]models.Service, error)

	// Reviews.
	AddReview(ctx context.Context, serviceID int64, in models.ReviewInput) (*models.Review, error)
	ListByService(ctx context.Context, serviceID int64) ([]models.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]models.UserReview, error)
}
