package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a record id does not exist in the collection.
var ErrNotFound = errors.New("record not found")

// Sort names a record field and direction for listing.
type Sort struct {
	Field string
	Desc  bool
}

// Collection is a named grouping of schema-less records. Timestamps are the
// caller's responsibility to set; the store never adds fields on its own.
type Collection[T any] interface {
	// Insert stores a new record and returns its server-generated id.
	Insert(ctx context.Context, doc *T) (primitive.ObjectID, error)
	// All returns every record, ordered by sort when non-nil.
	All(ctx context.Context, sort *Sort) ([]*T, error)
	// First returns the first record under sort, or nil when the collection is empty.
	First(ctx context.Context, sort Sort) (*T, error)
	// DeleteByID removes a record, reporting ErrNotFound for unknown ids.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	// UpdateByID overwrites only the supplied fields; omitted fields keep their values.
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	// ReplaceUpsert replaces the record matching filter, inserting it when absent.
	ReplaceUpsert(ctx context.Context, filter bson.M, doc *T) error
}

// MongoCollection backs a Collection with a MongoDB collection.
type MongoCollection[T any] struct {
	coll *mongo.Collection
}

func NewMongoCollection[T any](db *mongo.Database, name string) *MongoCollection[T] {
	return &MongoCollection[T]{coll: db.Collection(name)}
}

func (c *MongoCollection[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (c *MongoCollection[T]) All(ctx context.Context, sort *Sort) ([]*T, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(bson.D{{Key: sort.Field, Value: sortOrder(sort.Desc)}})
	}
	cursor, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *MongoCollection[T]) First(ctx context.Context, sort Sort) (*T, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: sort.Field, Value: sortOrder(sort.Desc)}})
	var doc T
	err := c.coll.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (c *MongoCollection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *MongoCollection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := c.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *MongoCollection[T]) ReplaceUpsert(ctx context.Context, filter bson.M, doc *T) error {
	opts := options.Replace().SetUpsert(true)
	_, err := c.coll.ReplaceOne(ctx, filter, doc, opts)
	return err
}

func sortOrder(desc bool) int {
	if desc {
		return -1
	}
	return 1
}
