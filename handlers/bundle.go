// File: servicehub/handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth          *AuthHandler
	Services      *ServiceHandler
	Reviews       *ReviewHandler
	Quotations    *QuotationHandler
	Customer      *CustomerHandler
	Provider      *ProviderHandler
	Notifications *NotificationHandler
	Admin         *AdminHandler
}
