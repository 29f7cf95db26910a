package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var ErrNotInitialized = errors.New("database not initialized")

// MongoRepository is the persistence adapter. DB may be nil when the
// process failed to build its handle at start-up.
type MongoRepository struct {
	DB  *mongo.Database
	now func() time.Time
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{DB: db, now: time.Now}
}

func (r *MongoRepository) Available() bool {
	return r != nil && r.DB != nil
}

func (r *MongoRepository) Name() string {
	if !r.Available() {
		return ""
	}
	return r.DB.Name()
}

// CreateDocument inserts record into collection and returns the generated id.
func (r *MongoRepository) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if !r.Available() {
		return "", ErrNotInitialized
	}

	doc, err := r.toDocument(record)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}

	res, err := r.DB.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s document: %w", collection, err)
	}

	return insertedIDString(res.InsertedID), nil
}

// GetDocuments returns every document in collection, unfiltered and unsorted.
func (r *MongoRepository) GetDocuments(ctx context.Context, collection string) ([]bson.M, error) {
	if !r.Available() {
		return nil, ErrNotInitialized
	}

	cur, err := r.DB.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s documents: %w", collection, err)
	}

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return docs, nil
}

func (r *MongoRepository) ListCollectionNames(ctx context.Context) ([]string, error) {
	if !r.Available() {
		return nil, ErrNotInitialized
	}
	return r.DB.ListCollectionNames(ctx, bson.D{})
}

func (r *MongoRepository) toDocument(record any) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}

	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	clock := r.now
	if clock == nil {
		clock = time.Now
	}
	now := clock().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now
	return doc, nil
}

func insertedIDString(id any) string {
	switch v := id.(type) {
	case bson.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// DecodeDocument converts a raw document into out, dropping the
// database-internal _id first.
func DecodeDocument(doc bson.M, out any) error {
	clean := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		clean[k] = v
	}

	raw, err := bson.Marshal(clean)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
