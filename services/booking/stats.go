package booking

import (
	"context"
	"sort"

	"servicehub/models"
	"servicehub/utils"
)

// CustomerStats summarizes a customer's quotations and spending.
func (s *DefaultBookingService) CustomerStats(ctx context.Context, customerID int64) (*models.CustomerStats, error) {
	quotes, err := s.Quotations.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	stats := &models.CustomerStats{}
	for _, q := range quotes {
		switch q.Status {
		case models.QuotationPending:
			stats.ActiveQuotations++
			stats.PendingResponses++
		case models.QuotationAccepted:
			stats.ActiveQuotations++
		case models.QuotationCompleted:
			stats.CompletedServices++
		}
	}
	stats.Breakdown = spendingBreakdown(bookings)
	stats.TotalSpent = stats.Breakdown.Total
	return stats, nil
}

// spendingBreakdown groups paid bookings by service (largest first) and by
// calendar month (oldest first).
func spendingBreakdown(bookings []models.Booking) models.SpendingBreakdown {
	byService := map[string]float64{}
	byMonth := map[string]float64{}
	var total float64
	for _, b := range bookings {
		if b.PaymentStatus != models.PaymentPaid {
			continue
		}
		total += b.Amount
		byService[b.ServiceTitle] += b.Amount
		when := b.CreatedAt
		if b.PaidAt != nil {
			when = *b.PaidAt
		}
		byMonth[when.Format("2006-01")] += b.Amount
	}

	out := models.SpendingBreakdown{
		Total:     utils.Round2(total),
		ByService: entries(byService),
		ByMonth:   entries(byMonth),
	}
	sort.SliceStable(out.ByService, func(i, j int) bool {
		if out.ByService[i].Amount != out.ByService[j].Amount {
			return out.ByService[i].Amount > out.ByService[j].Amount
		}
		return out.ByService[i].Label < out.ByService[j].Label
	})
	sort.Slice(out.ByMonth, func(i, j int) bool { return out.ByMonth[i].Label < out.ByMonth[j].Label })
	return out
}

func entries(m map[string]float64) []models.SpendingEntry {
	out := make([]models.SpendingEntry, 0, len(m))
	for label, amount := range m {
		out = append(out, models.SpendingEntry{Label: label, Amount: utils.Round2(amount)})
	}
	return out
}
