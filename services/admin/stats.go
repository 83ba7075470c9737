package admin

import (
	"context"
	"time"

	"servicehub/models"
	"servicehub/utils"
)

// Stats aggregates accounts, listings, quotations and paid bookings.
func (s *DefaultAdminService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.Catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := s.Quotations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	stats := &models.PlatformStats{TotalUsers: len(users)}
	for _, u := range users {
		if !u.CreatedAt.Before(thisMonth) {
			stats.NewUsersThisMonth++
		}
	}
	for _, svc := range services {
		switch svc.Status {
		case models.ServicePending:
			stats.PendingServices++
		case models.ServiceRejected:
		default:
			stats.ActiveServices++
		}
	}
	for _, q := range quotes {
		switch q.Status {
		case models.QuotationCompleted:
			stats.CompletedProjects++
		case models.QuotationAccepted:
			stats.ActiveProjects++
		}
	}

	var total, current, previous float64
	for _, b := range bookings {
		if b.PaymentStatus != models.PaymentPaid {
			continue
		}
		total += b.Amount
		when := b.CreatedAt
		if b.PaidAt != nil {
			when = *b.PaidAt
		}
		when = when.UTC()
		switch {
		case !when.Before(thisMonth):
			current += b.Amount
		case !when.Before(lastMonth):
			previous += b.Amount
		}
	}
	stats.TotalRevenue = utils.Round2(total)
	if previous > 0 {
		stats.RevenueGrowth = utils.Round2((current - previous) / previous * 100)
	}
	return stats, nil
}
