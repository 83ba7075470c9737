package admin

import (
	"context"
	"errors"
	"time"

	bookingRepo "servicehub/database/repository/booking"
	catalogRepo "servicehub/database/repository/catalog"
	quotationRepo "servicehub/database/repository/quotation"
	userRepo "servicehub/database/repository/user"
	"servicehub/models"
)

var (
	ErrNotFound = models.ErrNotFound
	// ErrInvalidAction is returned for actions outside the admin vocabulary.
	ErrInvalidAction = errors.New("unknown admin action")
	// ErrProtectedAccount is returned when an admin account would be suspended.
	ErrProtectedAccount = errors.New("admin accounts cannot be suspended")
)

// AdminService is the platform oversight surface behind the admin role.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	// UserAction applies view, suspend or activate to an account.
	UserAction(ctx context.Context, userID int64, action string) (*models.UserSummary, error)

	ListServices(ctx context.Context) ([]models.ServiceSummary, error)
	// ServiceAction applies approve or reject to a listing.
	ServiceAction(ctx context.Context, serviceID int64, action string) (*models.ServiceSummary, error)

	ListQuotations(ctx context.Context) ([]models.QuotationSummary, error)
	Stats(ctx context.Context) (*models.PlatformStats, error)
}

// DefaultAdminService reads every repository and writes account and
// listing states.
type DefaultAdminService struct {
	Users      userRepo.UserRepository
	Catalog    catalogRepo.CatalogRepository
	Quotations quotationRepo.QuotationRepository
	Bookings   bookingRepo.BookingRepository
	Now        func() time.Time
}

var _ AdminService = (*DefaultAdminService)(nil)

func (s *DefaultAdminService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
