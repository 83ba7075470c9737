package catalog

import (
	"errors"

	"servicehub/models"
)

var (
	// ErrNotFound is returned for unknown service ids.
	ErrNotFound = models.ErrNotFound
	// ErrForbidden is returned when a provider touches another provider's listing.
	ErrForbidden = errors.New("service belongs to another provider")
	// ErrInvalidReview is returned for ratings outside 1..5.
	ErrInvalidReview = errors.New("rating must be between 1 and 5")
	// ErrInvalidService is returned for drafts without a title or with a negative price.
	ErrInvalidService = errors.New("service needs a title and a non-negative price")
)
