package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus tracks whether a booking has been paid.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking is the billable outcome of a completed quotation.
type Booking struct {
	ID            int64         `bson:"id" json:"id"`
	QuotationID   int64         `bson:"quotationId" json:"quotationId"`
	ServiceID     int64         `bson:"serviceId" json:"serviceId"`
	ServiceTitle  string        `bson:"serviceTitle" json:"serviceTitle"`
	CustomerID    int64         `bson:"customerId" json:"customerId"`
	Provider      Party         `bson:"provider" json:"provider"`
	Amount        float64       `bson:"amount" json:"amount"`
	Currency      string        `bson:"currency" json:"currency"`
	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	PaymentRef    string        `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	PaidAt        *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	Version       int64         `bson:"version" json:"-"`
}

// ChargeRequest is sent to a payment gateway.
type ChargeRequest struct {
	BookingID     int64
	CustomerID    int64
	Amount        float64
	Currency      string
	PaymentMethod string
	Description   string
}

// PaymentReceipt is a gateway's confirmation of a charge.
type PaymentReceipt struct {
	PaymentID string    `json:"paymentId"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	PaidAt    time.Time `json:"paidAt"`
}

// SavedService is a bookmark a customer keeps on a listing.
type SavedService struct {
	UserID    int64     `bson:"userId" json:"-"`
	ServiceID int64     `bson:"serviceId" json:"serviceId"`
	SavedAt   time.Time `bson:"savedAt" json:"savedAt"`
}

// SpendingEntry is one line of a spending breakdown.
type SpendingEntry struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// SpendingBreakdown groups paid bookings.
type SpendingBreakdown struct {
	Total     float64         `json:"total"`
	ByService []SpendingEntry `json:"byService"`
	ByMonth   []SpendingEntry `json:"byMonth"`
}

// CustomerStats backs the customer dashboard.
type CustomerStats struct {
	ActiveQuotations  int               `json:"activeQuotations"`
	PendingResponses  int               `json:"pendingResponses"`
	CompletedServices int               `json:"completedServices"`
	TotalSpent        float64           `json:"totalSpent"`
	Breakdown         SpendingBreakdown `json:"breakdown"`
}
