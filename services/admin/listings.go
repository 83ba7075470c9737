package admin

import (
	"context"
	"fmt"

	"servicehub/models"
)

func serviceSummary(svc models.Service) models.ServiceSummary {
	status := svc.Status
	if status == "" {
		status = models.ServiceApproved
	}
	return models.ServiceSummary{
		ID:       svc.ID,
		Title:    svc.Title,
		Provider: svc.Provider.Name,
		Category: svc.Category,
		Price:    svc.Price,
		Status:   status,
	}
}

// ListServices returns every listing, rejected ones included, in insertion order.
func (s *DefaultAdminService) ListServices(ctx context.Context) ([]models.ServiceSummary, error) {
	services, err := s.Catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	out := make([]models.ServiceSummary, 0, len(services))
	for _, svc := range services {
		out = append(out, serviceSummary(svc))
	}
	return out, nil
}

func (s *DefaultAdminService) ServiceAction(ctx context.Context, serviceID int64, action string) (*models.ServiceSummary, error) {
	var status string
	switch action {
	case models.ServiceActionApprove:
		status = models.ServiceApproved
	case models.ServiceActionReject:
		status = models.ServiceRejected
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	svc, err := s.Catalog.Mutate(ctx, serviceID, func(svc *models.Service) error {
		svc.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary := serviceSummary(*svc)
	return &summary, nil
}

// ListQuotations returns every quotation, newest first.
func (s *DefaultAdminService) ListQuotations(ctx context.Context) ([]models.QuotationSummary, error) {
	quotes, err := s.Quotations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	out := make([]models.QuotationSummary, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, models.QuotationSummary{
			ID:       q.ID,
			Customer: q.Customer.Name,
			Provider: q.Provider.Name,
			Service:  q.ServiceTitle,
			Budget:   q.Budget,
			Status:   q.Status,
			Date:     q.CreatedAt,
		})
	}
	return out, nil
}
