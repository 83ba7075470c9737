package catalogRepo

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

// maxMutateAttempts bounds optimistic retries when writers race on one document.
const maxMutateAttempts = 5

var _ CatalogRepository = (*MongoCatalogRepo)(nil)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
// Read-modify-write goes through a version compare-and-swap.
type MongoCatalogRepo struct {
	coll *mongo.Collection
	ids  sequence.Sequence
	now  func() time.Time
}

// NewMongoCatalogRepo binds the "services" collection and ensures its indexes.
func NewMongoCatalogRepo(db *mongo.Database, ids sequence.Sequence) (*MongoCatalogRepo, error) {
	r := &MongoCatalogRepo{
		coll: db.Collection("services"),
		ids:  ids,
		now:  time.Now,
	}
	if err := r.ensureIndexes(); err != nil {
		return nil, err
	}
	return r, nil
}

// SeedIfEmpty loads the fixture when the collection holds no documents. The
// id counter is moved past the fixture either way.
func (r *MongoCatalogRepo) SeedIfEmpty(ctx context.Context, services []models.Service) (bool, error) {
	if err := sequence.AdvancePast(ctx, r.ids, MaxServiceID(services)); err != nil {
		return false, err
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count services: %w", err)
	}
	if n > 0 || len(services) == 0 {
		return false, nil
	}
	docs := make([]interface{}, 0, len(services))
	for _, s := range services {
		docs = append(docs, s)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return false, fmt.Errorf("failed to seed services: %w", err)
	}
	return true, nil
}

func (r *MongoCatalogRepo) Insert(ctx context.Context, draft models.Service) (*models.Service, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	svc := draft.Clone()
	svc.ID = id
	svc.Rating = 0
	svc.Reviews = 0
	svc.RatingSum = 0
	svc.Views = 0
	svc.ReviewsList = []models.Review{}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	now := r.now().UTC()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	svc.Version = 1

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to insert service: %w", err)
	}
	return &svc, nil
}

func (r *MongoCatalogRepo) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %d: %w", id, err)
	}
	return &svc, nil
}

func (r *MongoCatalogRepo) Update(ctx context.Context, id int64, patch models.ServicePatch) (*models.Service, error) {
	return r.Mutate(ctx, id, func(svc *models.Service) error {
		patch.Apply(svc)
		return nil
	})
}

func (r *MongoCatalogRepo) Mutate(ctx context.Context, id int64, fn MutateFunc) (*models.Service, error) {
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
			return nil, fmt.Errorf("failed to update service with id %d: %w", id, err)
		}
		if res.MatchedCount == 1 {
			return current, nil
		}
		// Someone else wrote first or the document is gone; reload and retry.
	}
	return nil, fmt.Errorf("failed to update service with id %d: %w", id, models.ErrConflict)
}

func (r *MongoCatalogRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete service with id %d: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoCatalogRepo) ListAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	// Ids are monotonic, so id order is insertion order.
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)
	services := []models.Service{}
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}
	return services, nil
}
