package quotationRepo

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

// maxMutateAttempts bounds optimistic retries when writers race on one quotation.
const maxMutateAttempts = 5

var _ QuotationRepository = (*MongoQuotationRepo)(nil)

// MongoQuotationRepo implements QuotationRepository using MongoDB.
// Status transitions go through a version compare-and-swap.
type MongoQuotationRepo struct {
	coll *mongo.Collection
	ids  sequence.Sequence
	now  func() time.Time
}

// NewMongoQuotationRepo binds the "quotations" collection and ensures its indexes.
func NewMongoQuotationRepo(db *mongo.Database, ids sequence.Sequence) (*MongoQuotationRepo, error) {
	r := &MongoQuotationRepo{coll: db.Collection("quotations"), ids: ids, now: time.Now}
	if err := r.ensureIndexes(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MongoQuotationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer.id", Value: 1}}},
		{Keys: bson.D{{Key: "provider.id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoQuotationRepo) Create(ctx context.Context, q models.Quotation) (*models.Quotation, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	q.ID = id
	q.Version = 1
	now := r.now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to insert quotation: %w", err)
	}
	return &q, nil
}

func (r *MongoQuotationRepo) GetByID(ctx context.Context, id int64) (*models.Quotation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var q models.Quotation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch quotation with id %d: %w", id, err)
	}
	return &q, nil
}

func (r *MongoQuotationRepo) Mutate(ctx context.Context, id int64, fn func(q *models.Quotation) error) (*models.Quotation, error) {
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
		current.UpdatedAt = r.now().UTC()

		wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		res, err := r.coll.ReplaceOne(wctx, bson.M{"id": id, "version": expected}, current)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to update quotation with id %d: %w", id, err)
		}
		if res.MatchedCount == 1 {
			return current, nil
		}
	}
	return nil, fmt.Errorf("failed to update quotation with id %d: %w", id, models.ErrConflict)
}

func (r *MongoQuotationRepo) find(ctx context.Context, filter bson.M) ([]models.Quotation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve quotations: %w", err)
	}
	defer cursor.Close(ctx)
	quotations := []models.Quotation{}
	if err := cursor.All(ctx, &quotations); err != nil {
		return nil, fmt.Errorf("failed to decode quotations: %w", err)
	}
	return quotations, nil
}

func (r *MongoQuotationRepo) ListByCustomer(ctx context.Context, customerID int64) ([]models.Quotation, error) {
	return r.find(ctx, bson.M{"customer.id": customerID})
}

func (r *MongoQuotationRepo) ListByProvider(ctx context.Context, providerID int64) ([]models.Quotation, error) {
	return r.find(ctx, bson.M{"provider.id": providerID})
}

func (r *MongoQuotationRepo) ListAll(ctx context.Context) ([]models.Quotation, error) {
	return r.find(ctx, bson.M{})
}
