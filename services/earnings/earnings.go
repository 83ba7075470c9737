package earnings

import (
	"context"
	"sort"
	"strconv"
	"time"

	"servicehub/models"
	"servicehub/utils"
)

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// rangeStart returns the earliest date kept for a time range. Unknown ranges
// fall back to a month.
func rangeStart(now time.Time, timeRange string) time.Time {
	switch timeRange {
	case RangeAll:
		return time.Time{}
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, -1, 0)
	}
}

func paidAt(b models.Booking) time.Time {
	if b.PaidAt != nil {
		return *b.PaidAt
	}
	return b.CreatedAt
}

type ledger struct {
	summary      models.EarningsSummary
	transactions []models.Transaction
}

func (s *DefaultEarningsService) ledger(ctx context.Context, providerID int64) (*ledger, error) {
	bookings, err := s.Bookings.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	payouts, err := s.Payouts.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	thisMonth := monthStart(now)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	l := &ledger{}
	var paidOut float64
	for _, b := range bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		tx := models.Transaction{
			ID:      "booking-" + strconv.FormatInt(b.ID, 10),
			Type:    models.TransactionEarning,
			Amount:  b.Amount,
			Service: b.ServiceTitle,
			Date:    paidAt(b),
		}
		if b.PaymentStatus != models.PaymentPaid {
			l.summary.Pending += b.Amount
			tx.Description = "Payment pending"
			tx.Status = "pending"
			l.transactions = append(l.transactions, tx)
			continue
		}
		tx.Description = "Payment received"
		tx.Status = "completed"
		l.transactions = append(l.transactions, tx)

		l.summary.Total += b.Amount
		switch when := tx.Date; {
		case !when.Before(thisMonth):
			l.summary.ThisMonth += b.Amount
		case !when.Before(lastMonth):
			l.summary.LastMonth += b.Amount
		}
	}
	for _, p := range payouts {
		paidOut += p.Amount
		l.transactions = append(l.transactions, models.Transaction{
			ID:          p.ID,
			Type:        models.TransactionPayout,
			Amount:      p.Amount,
			Description: "Withdrawal to bank",
			Service:     "Bank Transfer",
			Status:      p.Status,
			Date:        p.CreatedAt,
		})
	}

	l.summary.Total = utils.Round2(l.summary.Total)
	l.summary.ThisMonth = utils.Round2(l.summary.ThisMonth)
	l.summary.LastMonth = utils.Round2(l.summary.LastMonth)
	l.summary.Pending = utils.Round2(l.summary.Pending)
	l.summary.Available = utils.Round2(l.summary.Total - paidOut)

	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.After(l.transactions[j].Date)
	})
	return l, nil
}

func (s *DefaultEarningsService) Report(ctx context.Context, providerID int64, timeRange string) (*models.EarningsReport, error) {
	l, err := s.ledger(ctx, providerID)
	if err != nil {
		return nil, err
	}
	since := rangeStart(s.now(), timeRange)
	out := &models.EarningsReport{Earnings: l.summary, Transactions: []models.Transaction{}}
	for _, tx := range l.transactions {
		if !tx.Date.Before(since) {
			out.Transactions = append(out.Transactions, tx)
		}
	}
	return out, nil
}
