package booking

import (
	"context"
	"sort"

	"servicehub/models"
	"servicehub/services/catalog"
)

// Default page sizes for the customer dashboard widgets.
const (
	DefaultActivityLimit       = 10
	DefaultRecommendationLimit = 3
)

var activityTitles = map[models.QuotationStatus]string{
	models.QuotationPending:   "Quotation Pending",
	models.QuotationAccepted:  "Quotation Accepted",
	models.QuotationRejected:  "Quotation Rejected",
	models.QuotationCancelled: "Quotation Cancelled",
	models.QuotationCompleted: "Service Completed",
}

// Activity derives the feed from the customer's quotations, ordered by their
// last change.
func (s *DefaultBookingService) Activity(ctx context.Context, customerID int64, limit int) ([]models.ActivityItem, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	quotes, err := s.Quotations.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].UpdatedAt.After(quotes[j].UpdatedAt) })
	if len(quotes) > limit {
		quotes = quotes[:limit]
	}

	out := make([]models.ActivityItem, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, models.ActivityItem{
			ID:      q.ID,
			Title:   activityTitles[q.Status],
			Service: q.ServiceTitle,
			Status:  string(q.Status),
			Date:    q.UpdatedAt,
		})
	}
	return out, nil
}

// Recommendations ranks the catalog by rating and skips rejected listings,
// the customer's own listings and those the customer already requested a
// quotation for.
func (s *DefaultBookingService) Recommendations(ctx context.Context, customerID int64, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	quotes, err := s.Quotations.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	asked := make(map[int64]bool, len(quotes))
	for _, q := range quotes {
		asked[q.ServiceID] = true
	}

	all, err := s.Catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]models.Service, 0, len(all))
	for _, svc := range all {
		if svc.Status == models.ServiceRejected || svc.ProviderID == customerID || asked[svc.ID] {
			continue
		}
		candidates = append(candidates, svc)
	}
	catalog.SortServices(candidates, models.SortByRating)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]models.Recommendation, 0, len(candidates))
	for _, svc := range candidates {
		out = append(out, models.Recommendation{ID: svc.ID, Title: svc.Title, Rating: svc.Rating, Price: svc.Price})
	}
	return out, nil
}
