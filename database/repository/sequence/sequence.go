// Package sequence hands out monotonic numeric ids.
package sequence

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sequence yields strictly increasing ids.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// Advancer is implemented by sequences that can skip ids loaded from elsewhere.
type Advancer interface {
	Advance(ctx context.Context, id int64) error
}

// AdvancePast makes sure seq's next id is greater than id. Sequences that
// cannot be advanced are left alone.
func AdvancePast(ctx context.Context, seq Sequence, id int64) error {
	if a, ok := seq.(Advancer); ok {
		return a.Advance(ctx, id)
	}
	return nil
}

// Counter is an in-process Sequence.
type Counter struct {
	last atomic.Int64
}

var (
	_ Sequence = (*Counter)(nil)
	_ Advancer = (*Counter)(nil)
)

// NewCounter returns a counter whose first id is after+1.
func NewCounter(after int64) *Counter {
	c := &Counter{}
	c.last.Store(after)
	return c
}

// Next returns the next id.
func (c *Counter) Next(_ context.Context) (int64, error) {
	return c.last.Add(1), nil
}

// Advance makes sure the next id is greater than id.
func (c *Counter) Advance(_ context.Context, id int64) error {
	for {
		cur := c.last.Load()
		if cur >= id || c.last.CompareAndSwap(cur, id) {
			return nil
		}
	}
}

// MongoCounter keeps named counters in a collection and bumps them with $inc.
type MongoCounter struct {
	coll *mongo.Collection
	name string
}

var (
	_ Sequence = (*MongoCounter)(nil)
	_ Advancer = (*MongoCounter)(nil)
)

// NewMongoCounter returns a sequence stored under name in the "counters" collection.
func NewMongoCounter(db *mongo.Database, name string) *MongoCounter {
	return &MongoCounter{coll: db.Collection("counters"), name: name}
}

// Next atomically increments and returns the counter.
func (m *MongoCounter) Next(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": m.name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance counter %s: %w", m.name, err)
	}
	return doc.Seq, nil
}

// Advance raises the counter to at least id, for seeded collections.
func (m *MongoCounter) Advance(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := m.coll.UpdateOne(ctx, bson.M{"_id": m.name}, bson.M{"$max": bson.M{"seq": id}}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to advance counter %s: %w", m.name, err)
	}
	return nil
}
