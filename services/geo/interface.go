package geo

import (
	"context"

	"servicehub/models"
)

// CityResolver maps a free-text city to coordinates.
type CityResolver interface {
	// Lookup returns the city's point and whether it is known.
	Lookup(ctx context.Context, city string) (models.Point, bool)
}
