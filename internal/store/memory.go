package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection keeps records in process memory behind the same contract as
// the Mongo-backed collection. Used by tests and available for local demo runs.
type MemoryCollection[T any] struct {
	mu   sync.RWMutex
	docs map[primitive.ObjectID]bson.M
}

func NewMemoryCollection[T any]() *MemoryCollection[T] {
	return &MemoryCollection[T]{docs: make(map[primitive.ObjectID]bson.M)}
}

func (c *MemoryCollection[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	m, err := encode(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	m["_id"] = id

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[id] = m
	return id, nil
}

func (c *MemoryCollection[T]) All(ctx context.Context, s *Sort) ([]*T, error) {
	c.mu.RLock()
	raw := make([]bson.M, 0, len(c.docs))
	for _, m := range c.docs {
		raw = append(raw, m)
	}
	c.mu.RUnlock()

	if s != nil {
		sortDocs(raw, *s)
	}
	docs := make([]*T, 0, len(raw))
	for _, m := range raw {
		doc, err := decode[T](m)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (c *MemoryCollection[T]) First(ctx context.Context, s Sort) (*T, error) {
	docs, err := c.All(ctx, &s)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (c *MemoryCollection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.docs, id)
	return nil
}

func (c *MemoryCollection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.docs[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		m[k] = v
	}
	return nil
}

func (c *MemoryCollection[T]) ReplaceUpsert(ctx context.Context, filter bson.M, doc *T) error {
	m, err := encode(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for id, existing := range c.docs {
		if matches(existing, filter) {
			m["_id"] = id
			c.docs[id] = m
			return nil
		}
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	c.docs[id] = m
	return nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func sortDocs(docs []bson.M, s Sort) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := fieldString(docs[i], s.Field), fieldString(docs[j], s.Field)
		if s.Desc {
			return a > b
		}
		return a < b
	})
}

func fieldString(doc bson.M, field string) string {
	v, ok := doc[field]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func encode[T any](doc *T) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
