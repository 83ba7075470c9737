package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servicehub/database/repository/sequence"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxMutateAttempts bounds optimistic retries when writers race on one booking.
const maxMutateAttempts = 5

var _ BookingRepository = (*MongoBookingRepo)(nil)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
	ids  sequence.Sequence
	now  func() time.Time
}

// NewMongoBookingRepo binds the "bookings" collection and ensures its indexes.
func NewMongoBookingRepo(db *mongo.Database, ids sequence.Sequence) (*MongoBookingRepo, error) {
	r := &MongoBookingRepo{coll: db.Collection("bookings"), ids: ids, now: time.Now}
	err := ensureIndexes(r.coll, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
		{Keys: bson.D{{Key: "provider.id", Value: 1}}},
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func ensureIndexes(coll *mongo.Collection, indexModels []mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, b models.Booking) (*models.Booking, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	b.ID = id
	b.Version = 1
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %d: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) Mutate(ctx context.Context, id int64, fn func(b *models.Booking) error) (*models.Booking, error) {
	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		expected := current.Version
		if err := fn(current); err != nil {
			return nil, err
		}
		current.ID = id
		current.Version = expected + 1

		wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		res, err := r.coll.ReplaceOne(wctx, bson.M{"id": id, "version": expected}, current)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to update booking with id %d: %w", id, err)
		}
		if res.MatchedCount == 1 {
			return current, nil
		}
	}
	return nil, fmt.Errorf("failed to update booking with id %d: %w", id, models.ErrConflict)
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID int64) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"customerId": customerID})
}

func (r *MongoBookingRepo) ListByProvider(ctx context.Context, providerID int64) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"provider.id": providerID})
}

func (r *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

var _ SavedServiceRepository = (*MongoSavedServiceRepo)(nil)

// MongoSavedServiceRepo keeps one document per (user, service) bookmark.
type MongoSavedServiceRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoSavedServiceRepo binds the "saved_services" collection.
func NewMongoSavedServiceRepo(db *mongo.Database) (*MongoSavedServiceRepo, error) {
	r := &MongoSavedServiceRepo{coll: db.Collection("saved_services"), now: time.Now}
	err := ensureIndexes(r.coll, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "serviceId", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MongoSavedServiceRepo) Save(ctx context.Context, userID, serviceID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"userId": userID, "serviceId": serviceID}
	update := bson.M{"$setOnInsert": bson.M{"savedAt": r.now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to save service %d: %w", serviceID, err)
	}
	return res.UpsertedCount > 0, nil
}

func (r *MongoSavedServiceRepo) Remove(ctx context.Context, userID, serviceID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "serviceId": serviceID})
	if err != nil {
		return false, fmt.Errorf("failed to remove saved service %d: %w", serviceID, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoSavedServiceRepo) List(ctx context.Context, userID int64) ([]models.SavedService, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.D{{Key: "savedAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve saved services: %w", err)
	}
	defer cursor.Close(ctx)
	saved := []models.SavedService{}
	if err := cursor.All(ctx, &saved); err != nil {
		return nil, fmt.Errorf("failed to decode saved services: %w", err)
	}
	return saved, nil
}
