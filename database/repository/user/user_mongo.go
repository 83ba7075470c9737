package userRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"servicehub/database/repository/sequence"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ UserRepository = (*MongoUserRepo)(nil)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
	ids  sequence.Sequence
}

// NewMongoUserRepo binds the "users" collection and ensures its indexes.
func NewMongoUserRepo(db *mongo.Database, ids sequence.Sequence) (*MongoUserRepo, error) {
	repo := &MongoUserRepo{coll: db.Collection("users"), ids: ids}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

// newContext derives a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// SeedIfMissing inserts the given users unless their email is already
// registered, then moves the id counter past them.
func (r *MongoUserRepo) SeedIfMissing(ctx context.Context, users ...models.User) error {
	if err := sequence.AdvancePast(ctx, r.ids, MaxID(users)); err != nil {
		return err
	}
	for _, u := range users {
		if _, err := r.GetByEmail(ctx, u.Email); err == nil {
			continue
		} else if !errors.Is(err, models.ErrNotFound) {
			return err
		}
		u.Email = emailKey(u.Email)
		cctx, cancel := newContext(ctx, 5*time.Second)
		_, err := r.coll.InsertOne(cctx, u)
		cancel()
		if err != nil && !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
	}
	return nil
}

func (r *MongoUserRepo) Create(ctx context.Context, u models.User) (*models.User, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, err
	}
	u.ID = id
	u.Email = emailKey(u.Email)
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

// List returns every account ordered by id.
func (r *MongoUserRepo) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()
	var u models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &u, nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

// Mutate replaces the whole document. Profile edits are rare and last writer wins.
func (r *MongoUserRepo) Mutate(ctx context.Context, id int64, fn func(u *models.User) error) (*models.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(u); err != nil {
		return nil, err
	}
	u.ID = id
	u.UpdatedAt = time.Now().UTC()

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, u)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrNotFound
	}
	return u, nil
}
