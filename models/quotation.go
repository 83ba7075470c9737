package models

import "time"

// QuotationStatus is the lifecycle state of a quotation request.
type QuotationStatus string

const (
	QuotationPending   QuotationStatus = "pending"
	QuotationAccepted  QuotationStatus = "accepted"
	QuotationRejected  QuotationStatus = "rejected"
	QuotationCancelled QuotationStatus = "cancelled"
	QuotationCompleted QuotationStatus = "completed"
)

// Party identifies one side of a quotation.
type Party struct {
	ID   int64  `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Quotation is a customer's request for a price on a service.
type Quotation struct {
	ID                int64           `bson:"id" json:"id"`
	ServiceID         int64           `bson:"serviceId" json:"serviceId"`
	ServiceTitle      string          `bson:"serviceTitle" json:"serviceTitle"`
	Customer          Party           `bson:"customer" json:"customer"`
	Provider          Party           `bson:"provider" json:"provider"`
	Details           string          `bson:"details" json:"details"`
	Budget            float64         `bson:"budget" json:"budget"`
	Deadline          string          `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Status            QuotationStatus `bson:"status" json:"status"`
	ProviderResponse  string          `bson:"providerResponse,omitempty" json:"providerResponse,omitempty"`
	QuotedPrice       *float64        `bson:"quotedPrice,omitempty" json:"quotedPrice,omitempty"`
	EstimatedDuration string          `bson:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"`
	Reviewed          bool            `bson:"reviewed" json:"reviewed"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedAt" json:"updatedAt"`
	Version           int64           `bson:"version" json:"-"`
}

// QuotationRequest is what a customer submits.
type QuotationRequest struct {
	ServiceID int64   `json:"serviceId"`
	Details   string  `json:"details"`
	Budget    float64 `json:"budget"`
	Deadline  string  `json:"deadline"`
}

// QuotationResponse is a provider's answer to a pending quotation.
type QuotationResponse struct {
	Response          string  `json:"response"`
	QuotedPrice       float64 `json:"quotedPrice"`
	EstimatedDuration string  `json:"estimatedDuration"`
}
