package quotation

import (
	"context"
	"errors"

	"servicehub/models"
)

var (
	ErrNotFound          = models.ErrNotFound
	ErrForbidden         = errors.New("quotation belongs to someone else")
	ErrInvalidTransition = errors.New("quotation cannot move to that status")
	ErrInvalidRequest    = errors.New("quotation needs details and a non-negative budget")
)

// Notifier delivers in-app notifications about quotation events.
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, message, link string) error
}

// QuotationService runs the quotation lifecycle:
// pending -> accepted | rejected | cancelled, accepted -> completed | cancelled.
type QuotationService interface {
	Request(ctx context.Context, customer models.User, req models.QuotationRequest) (*models.Quotation, error)
	Get(ctx context.Context, userID, id int64) (*models.Quotation, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]models.Quotation, error)
	ListForProvider(ctx context.Context, providerID int64) ([]models.Quotation, error)
	Respond(ctx context.Context, providerID, id int64, resp models.QuotationResponse) (*models.Quotation, error)
	Reject(ctx context.Context, providerID, id int64) (*models.Quotation, error)
	Cancel(ctx context.Context, customerID, id int64) (*models.Quotation, error)
	// Complete closes an accepted quotation and opens a booking awaiting payment.
	Complete(ctx context.Context, customerID, id int64) (*models.Quotation, *models.Booking, error)
}
