package models

import "time"

// Payout is money a provider has withdrawn.
type Payout struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID int64     `bson:"providerId" json:"providerId"`
	Amount     float64   `bson:"amount" json:"amount"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Transaction types.
const (
	TransactionEarning = "earning"
	TransactionPayout  = "payout"
)

// Transaction is a line in a provider's earnings history.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Service     string    `json:"service"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// EarningsSummary holds a provider's totals.
type EarningsSummary struct {
	Total     float64 `json:"total"`
	ThisMonth float64 `json:"thisMonth"`
	LastMonth float64 `json:"lastMonth"`
	Pending   float64 `json:"pending"`
	Available float64 `json:"available"`
}

// EarningsReport backs the provider earnings page.
type EarningsReport struct {
	Earnings     EarningsSummary `json:"earnings"`
	Transactions []Transaction   `json:"transactions"`
}

// ProviderStats backs the provider dashboard.
type ProviderStats struct {
	TotalEarnings     float64 `json:"totalEarnings"`
	PendingQuotations int     `json:"pendingQuotations"`
	ActiveProjects    int     `json:"activeProjects"`
	AverageRating     float64 `json:"averageRating"`
	ServicesCount     int     `json:"servicesCount"`
}
