package repository

import (
	"context"
	"fmt"

	bookingRepo "servicehub/database/repository/booking"
	catalogRepo "servicehub/database/repository/catalog"
	notificationRepo "servicehub/database/repository/notification"
	payoutRepo "servicehub/database/repository/payout"
	quotationRepo "servicehub/database/repository/quotation"
	"servicehub/database/repository/sequence"
	userRepo "servicehub/database/repository/user"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the CatalogRepository interface and constructors.
type CatalogRepository = catalogRepo.CatalogRepository

var (
	NewMemoryCatalogRepo = catalogRepo.NewMemoryCatalogRepo
	NewMongoCatalogRepo  = catalogRepo.NewMongoCatalogRepo
)

// Re-export the remaining repositories.
type (
	QuotationRepository    = quotationRepo.QuotationRepository
	BookingRepository      = bookingRepo.BookingRepository
	SavedServiceRepository = bookingRepo.SavedServiceRepository
	UserRepository         = userRepo.UserRepository
	NotificationRepository = notificationRepo.NotificationRepository
	PayoutRepository       = payoutRepo.PayoutRepository
)

// Set bundles every repository the services depend on.
type Set struct {
	Catalog       CatalogRepository
	Quotations    QuotationRepository
	Bookings      BookingRepository
	Saved         SavedServiceRepository
	Users         UserRepository
	Notifications NotificationRepository
	Payouts       PayoutRepository

	// ReviewIDs numbers reviews across all services.
	ReviewIDs sequence.Sequence
}

// NewMemorySet builds an empty in-memory repository set.
func NewMemorySet() *Set {
	return &Set{
		Catalog:       catalogRepo.NewMemoryCatalogRepo(sequence.NewCounter(0)),
		Quotations:    quotationRepo.NewMemoryQuotationRepo(sequence.NewCounter(0)),
		Bookings:      bookingRepo.NewMemoryBookingRepo(sequence.NewCounter(0)),
		Saved:         bookingRepo.NewMemorySavedServiceRepo(),
		Users:         userRepo.NewMemoryUserRepo(sequence.NewCounter(0)),
		Notifications: notificationRepo.NewMemoryNotificationRepo(sequence.NewCounter(0)),
		Payouts:       payoutRepo.NewMemoryPayoutRepo(),
		ReviewIDs:     sequence.NewCounter(0),
	}
}

// NewMongoSet stores listings, accounts, quotations, bookings, bookmarks,
// payouts and their id counters in db. Notifications stay in memory.
func NewMongoSet(ctx context.Context, db *mongo.Database) (*Set, error) {
	catalog, err := catalogRepo.NewMongoCatalogRepo(db, sequence.NewMongoCounter(db, "services"))
	if err != nil {
		return nil, fmt.Errorf("catalog repository: %w", err)
	}
	users, err := userRepo.NewMongoUserRepo(db, sequence.NewMongoCounter(db, "users"))
	if err != nil {
		return nil, fmt.Errorf("user repository: %w", err)
	}
	quotations, err := quotationRepo.NewMongoQuotationRepo(db, sequence.NewMongoCounter(db, "quotations"))
	if err != nil {
		return nil, fmt.Errorf("quotation repository: %w", err)
	}
	bookings, err := bookingRepo.NewMongoBookingRepo(db, sequence.NewMongoCounter(db, "bookings"))
	if err != nil {
		return nil, fmt.Errorf("booking repository: %w", err)
	}
	saved, err := bookingRepo.NewMongoSavedServiceRepo(db)
	if err != nil {
		return nil, fmt.Errorf("saved service repository: %w", err)
	}
	payouts, err := payoutRepo.NewMongoPayoutRepo(db)
	if err != nil {
		return nil, fmt.Errorf("payout repository: %w", err)
	}

	return &Set{
		Catalog:       catalog,
		Quotations:    quotations,
		Bookings:      bookings,
		Saved:         saved,
		Users:         users,
		Notifications: notificationRepo.NewMemoryNotificationRepo(sequence.NewCounter(0)),
		Payouts:       payouts,
		ReviewIDs:     sequence.NewMongoCounter(db, "reviews"),
	}, nil
}

// Seed loads the demo catalog and accounts and moves every affected id
// sequence past the highest seeded id. Mongo stores keep existing data.
func (s *Set) Seed(ctx context.Context, services []models.Service, users []models.User) error {
	switch repo := s.Catalog.(type) {
	case *catalogRepo.MemoryCatalogRepo:
		repo.Seed(services...)
	case *catalogRepo.MongoCatalogRepo:
		if _, err := repo.SeedIfEmpty(ctx, services); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	switch repo := s.Users.(type) {
	case *userRepo.MemoryUserRepo:
		repo.Seed(users...)
	case *userRepo.MongoUserRepo:
		if err := repo.SeedIfMissing(ctx, users...); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}
	if err := sequence.AdvancePast(ctx, s.ReviewIDs, catalogRepo.MaxReviewID(services)); err != nil {
		return fmt.Errorf("seed review ids: %w", err)
	}
	return nil
}
