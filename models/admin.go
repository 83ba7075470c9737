package models

import "time"

// Account actions available to admins.
const (
	UserActionView     = "view"
	UserActionSuspend  = "suspend"
	UserActionActivate = "activate"
)

// Listing moderation actions available to admins.
const (
	ServiceActionApprove = "approve"
	ServiceActionReject  = "reject"
)

// UserSummary is a row of the admin user table.
type UserSummary struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	JoinedDate time.Time `json:"joinedDate"`
}

// ServiceSummary is a row of the admin listing table.
type ServiceSummary struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Provider string  `json:"provider"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// QuotationSummary is a row of the admin quotation table.
type QuotationSummary struct {
	ID       int64           `json:"id"`
	Customer string          `json:"customer"`
	Provider string          `json:"provider"`
	Service  string          `json:"service"`
	Budget   float64         `json:"budget"`
	Status   QuotationStatus `json:"status"`
	Date     time.Time       `json:"date"`
}

// PlatformStats backs the admin dashboard. RevenueGrowth is the percent
// change of paid revenue from last calendar month to this one.
type PlatformStats struct {
	TotalUsers        int     `json:"totalUsers"`
	NewUsersThisMonth int     `json:"newUsersThisMonth"`
	ActiveServices    int     `json:"activeServices"`
	PendingServices   int     `json:"pendingServices"`
	TotalRevenue      float64 `json:"totalRevenue"`
	RevenueGrowth     float64 `json:"revenueGrowth"`
	CompletedProjects int     `json:"completedProjects"`
	ActiveProjects    int     `json:"activeProjects"`
}

// ActivityItem is one entry of a customer's activity feed.
type ActivityItem struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Service string    `json:"service"`
	Status  string    `json:"status"`
	Date    time.Time `json:"date"`
}

// Recommendation is a listing suggested to a customer.
type Recommendation struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
	Price  float64 `json:"price"`
}
