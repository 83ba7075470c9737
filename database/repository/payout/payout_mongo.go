package payoutRepo

import (
	"context"
	"fmt"
	"time"

	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ PayoutRepository = (*MongoPayoutRepo)(nil)

// MongoPayoutRepo stores payouts in MongoDB. Balance checks are serialized
// per provider within this process only.
type MongoPayoutRepo struct {
	coll  *mongo.Collection
	locks providerLocks
}

// NewMongoPayoutRepo binds the "payouts" collection and ensures its indexes.
func NewMongoPayoutRepo(db *mongo.Database) (*MongoPayoutRepo, error) {
	r := &MongoPayoutRepo{coll: db.Collection("payouts")}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	return r, nil
}

func (r *MongoPayoutRepo) Create(ctx context.Context, p models.Payout) (*models.Payout, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to insert payout: %w", err)
	}
	return &p, nil
}

func (r *MongoPayoutRepo) ListByProvider(ctx context.Context, providerID int64) ([]models.Payout, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payouts: %w", err)
	}
	defer cursor.Close(ctx)
	payouts := []models.Payout{}
	if err := cursor.All(ctx, &payouts); err != nil {
		return nil, fmt.Errorf("failed to decode payouts: %w", err)
	}
	return payouts, nil
}

func (r *MongoPayoutRepo) WithProviderLock(providerID int64, fn func() error) error {
	return r.locks.with(providerID, fn)
}
