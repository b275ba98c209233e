package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cleanbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DefaultOperationTimeout = 10 * time.Second

var ErrNotInitialized = errors.New("database not initialized")

// DocumentStore writes documents into named collections of one database,
// stamping created_at and updated_at on insert.
type DocumentStore struct {
	db        *mongo.Database
	opTimeout time.Duration
	now       func() time.Time
}

type Option func(*DocumentStore)

func WithOperationTimeout(d time.Duration) Option {
	return func(s *DocumentStore) {
		if d > 0 {
			s.opTimeout = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *DocumentStore) {
		s.now = now
	}
}

func NewDocumentStore(db *mongo.Database, opts ...Option) *DocumentStore {
	s := &DocumentStore{
		db:        db,
		opTimeout: DefaultOperationTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// withTimeout keeps the caller's deadline when it is shorter than the
// operation timeout.
func (s *DocumentStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < s.opTimeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

func (s *DocumentStore) Create(ctx context.Context, collection string, fields map[string]any) (model.Document, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotInitialized
	}
	if collection == "" {
		return nil, errors.New("collection name cannot be empty")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now().UTC().Truncate(time.Millisecond)
	doc := make(bson.M, len(fields)+2)
	for k, v := range fields {
		doc[k] = v
	}
	doc[model.FieldCreatedAt] = now
	doc[model.FieldUpdatedAt] = now

	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	stored := make(model.Document, len(doc)+1)
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		stored[k] = v
	}
	stored[model.FieldID] = idString(result.InsertedID)
	return stored, nil
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (s *DocumentStore) DatabaseName() string {
	if s == nil || s.db == nil {
		return ""
	}
	return s.db.Name()
}

// ListCollectionNames returns at most limit names in lexical order. A
// non-positive limit returns every name.
func (s *DocumentStore) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotInitialized
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrNotInitialized
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.db.Client().Ping(ctx, readpref.Primary())
}
