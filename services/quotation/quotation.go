package quotation

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "servicehub/database/repository/booking"
	catalogRepo "servicehub/database/repository/catalog"
	quotationRepo "servicehub/database/repository/quotation"
	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
)

// transitions lists the statuses reachable from each status.
var transitions = map[models.QuotationStatus][]models.QuotationStatus{
	models.QuotationPending:  {models.QuotationAccepted, models.QuotationRejected, models.QuotationCancelled},
	models.QuotationAccepted: {models.QuotationCompleted, models.QuotationCancelled},
}

// CanTransition reports whether a quotation may move from one status to another.
func CanTransition(from, to models.QuotationStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// DefaultQuotationService implements QuotationService.
type DefaultQuotationService struct {
	Repo     quotationRepo.QuotationRepository
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Notifier Notifier
	Currency string
	Now      func() time.Time
}

var _ QuotationService = (*DefaultQuotationService)(nil)

func (s *DefaultQuotationService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultQuotationService) notify(ctx context.Context, userID int64, title, message, link string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, userID, title, message, link); err != nil {
		utils.GetLogger().Warn("quotation: notification failed",
			zap.Int64("userID", userID), zap.String("title", title), zap.Error(err))
	}
}

func (s *DefaultQuotationService) Request(ctx context.Context, customer models.User, req models.QuotationRequest) (*models.Quotation, error) {
	details := strings.TrimSpace(req.Details)
	if details == "" || req.Budget < 0 {
		return nil, ErrInvalidRequest
	}
	svc, err := s.Catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	q, err := s.Repo.Create(ctx, models.Quotation{
		ServiceID:    svc.ID,
		ServiceTitle: svc.Title,
		Customer:     models.Party{ID: customer.ID, Name: customer.Name},
		Provider:     models.Party{ID: svc.ProviderID, Name: svc.Provider.Name},
		Details:      details,
		Budget:       req.Budget,
		Deadline:     req.Deadline,
		Status:       models.QuotationPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}
	s.notify(ctx, q.Provider.ID, "New quotation request",
		fmt.Sprintf("%s requested a quote for %s", customer.Name, svc.Title),
		fmt.Sprintf("/provider/quotations/%d", q.ID))
	return q, nil
}

// Get returns a quotation to its customer or its provider.
func (s *DefaultQuotationService) Get(ctx context.Context, userID, id int64) (*models.Quotation, error) {
	q, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Customer.ID != userID && q.Provider.ID != userID {
		return nil, ErrForbidden
	}
	return q, nil
}

func (s *DefaultQuotationService) ListForCustomer(ctx context.Context, customerID int64) ([]models.Quotation, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

func (s *DefaultQuotationService) ListForProvider(ctx context.Context, providerID int64) ([]models.Quotation, error) {
	return s.Repo.ListByProvider(ctx, providerID)
}

// transition moves a quotation to `to` after checking who is acting.
func (s *DefaultQuotationService) transition(ctx context.Context, id int64, to models.QuotationStatus, allowed func(q *models.Quotation) bool, edit func(q *models.Quotation)) (*models.Quotation, error) {
	return s.Repo.Mutate(ctx, id, func(q *models.Quotation) error {
		if !allowed(q) {
			return ErrForbidden
		}
		if !CanTransition(q.Status, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, to)
		}
		q.Status = to
		if edit != nil {
			edit(q)
		}
		return nil
	})
}

func (s *DefaultQuotationService) Respond(ctx context.Context, providerID, id int64, resp models.QuotationResponse) (*models.Quotation, error) {
	if strings.TrimSpace(resp.Response) == "" || resp.QuotedPrice < 0 {
		return nil, ErrInvalidRequest
	}
	q, err := s.transition(ctx, id, models.QuotationAccepted,
		func(q *models.Quotation) bool { return q.Provider.ID == providerID },
		func(q *models.Quotation) {
			price := resp.QuotedPrice
			q.ProviderResponse = strings.TrimSpace(resp.Response)
			q.QuotedPrice = &price
			q.EstimatedDuration = resp.EstimatedDuration
		})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, q.Customer.ID, "Quotation received",
		fmt.Sprintf("%s quoted %.2f for %s", q.Provider.Name, resp.QuotedPrice, q.ServiceTitle),
		fmt.Sprintf("/quotations/%d", q.ID))
	return q, nil
}

func (s *DefaultQuotationService) Reject(ctx context.Context, providerID, id int64) (*models.Quotation, error) {
	q, err := s.transition(ctx, id, models.QuotationRejected,
		func(q *models.Quotation) bool { return q.Provider.ID == providerID }, nil)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, q.Customer.ID, "Quotation declined",
		fmt.Sprintf("%s declined your request for %s", q.Provider.Name, q.ServiceTitle),
		fmt.Sprintf("/quotations/%d", q.ID))
	return q, nil
}

func (s *DefaultQuotationService) Cancel(ctx context.Context, customerID, id int64) (*models.Quotation, error) {
	q, err := s.transition(ctx, id, models.QuotationCancelled,
		func(q *models.Quotation) bool { return q.Customer.ID == customerID }, nil)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, q.Provider.ID, "Quotation cancelled",
		fmt.Sprintf("%s cancelled the request for %s", q.Customer.Name, q.ServiceTitle),
		fmt.Sprintf("/provider/quotations/%d", q.ID))
	return q, nil
}

func (s *DefaultQuotationService) Complete(ctx context.Context, customerID, id int64) (*models.Quotation, *models.Booking, error) {
	q, err := s.transition(ctx, id, models.QuotationCompleted,
		func(q *models.Quotation) bool { return q.Customer.ID == customerID }, nil)
	if err != nil {
		return nil, nil, err
	}

	amount := q.Budget
	if q.QuotedPrice != nil {
		amount = *q.QuotedPrice
	}
	b, err := s.Bookings.Create(ctx, models.Booking{
		QuotationID:   q.ID,
		ServiceID:     q.ServiceID,
		ServiceTitle:  q.ServiceTitle,
		CustomerID:    q.Customer.ID,
		Provider:      q.Provider,
		Amount:        amount,
		Currency:      s.Currency,
		Status:        models.BookingCompleted,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     s.now(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open booking for quotation %d: %w", q.ID, err)
	}
	s.notify(ctx, q.Provider.ID, "Project completed",
		fmt.Sprintf("%s marked %s as completed", q.Customer.Name, q.ServiceTitle),
		"/provider/earnings")
	return q, b, nil
}
