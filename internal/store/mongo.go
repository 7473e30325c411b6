package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore writes records into collections of a single MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (m *MongoStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	doc, err := stamp(record, time.Now().UTC())
	if err != nil {
		return "", &PersistenceError{Collection: collection, Err: err}
	}
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &PersistenceError{Collection: collection, Err: err}
	}
	return idString(res.InsertedID), nil
}

func (m *MongoStore) Name() string { return m.db.Name() }

func (m *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.D{})
}

// stamp converts record to a bson document and adds the created/updated timestamps.
func stamp(record any, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	doc["created_at"] = now
	doc["updated_at"] = now
	return doc, nil
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	}
	return fmt.Sprint(id)
}
