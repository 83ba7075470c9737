package booking

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"servicehub/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentGateway charges a customer for a booking.
type PaymentGateway interface {
	Charge(ctx context.Context, req models.ChargeRequest) (*models.PaymentReceipt, error)
}

// MockGateway approves every charge. Used in development and tests.
type MockGateway struct {
	Now func() time.Time
}

func (g MockGateway) Charge(_ context.Context, req models.ChargeRequest) (*models.PaymentReceipt, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return &models.PaymentReceipt{
		PaymentID: "pi_" + uuid.New().String(),
		Status:    "succeeded",
		Amount:    req.Amount,
		Currency:  req.Currency,
		PaidAt:    now(),
	}, nil
}

// StripeGateway confirms a PaymentIntent with the given payment method.
// stripe.Key must be set before use.
type StripeGateway struct{}

// toMinorUnits converts an amount to cents.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (StripeGateway) Charge(_ context.Context, req models.ChargeRequest) (*models.PaymentReceipt, error) {
	if req.PaymentMethod == "" {
		req.PaymentMethod = "pm_card_visa"
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(toMinorUnits(req.Amount)),
		Currency:           stripe.String(req.Currency),
		PaymentMethod:      stripe.String(req.PaymentMethod),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
		Description:        stripe.String(req.Description),
	}
	params.AddMetadata("bookingId", strconv.FormatInt(req.BookingID, 10))
	params.AddMetadata("customerId", strconv.FormatInt(req.CustomerID, 10))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("%w: payment intent %s is %s", ErrPaymentFailed, pi.ID, pi.Status)
	}
	return &models.PaymentReceipt{
		PaymentID: pi.ID,
		Status:    string(pi.Status),
		Amount:    float64(pi.Amount) / 100,
		Currency:  string(pi.Currency),
		PaidAt:    time.Unix(pi.Created, 0).UTC(),
	}, nil
}
