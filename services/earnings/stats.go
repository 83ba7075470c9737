package earnings

import (
	"context"

	"servicehub/models"
	"servicehub/utils"
)

// ProviderStats backs the provider dashboard. The average rating only counts
// services that have been reviewed.
func (s *DefaultEarningsService) ProviderStats(ctx context.Context, providerID int64) (*models.ProviderStats, error) {
	l, err := s.ledger(ctx, providerID)
	if err != nil {
		return nil, err
	}
	quotes, err := s.Quotations.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	services, err := s.Catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.ProviderStats{TotalEarnings: l.summary.Total}
	for _, q := range quotes {
		switch q.Status {
		case models.QuotationPending:
			stats.PendingQuotations++
		case models.QuotationAccepted:
			stats.ActiveProjects++
		}
	}

	var ratingSum float64
	var rated int
	for _, svc := range services {
		if svc.ProviderID != providerID {
			continue
		}
		stats.ServicesCount++
		if svc.Reviews > 0 {
			ratingSum += svc.Rating
			rated++
		}
	}
	if rated > 0 {
		stats.AverageRating = utils.Round2(ratingSum / float64(rated))
	}
	return stats, nil
}
