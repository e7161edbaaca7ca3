package navstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jfdoradotr/navstack/pkg/errors"
)

// mongoDocID is the _id of the single document holding the path.
const mongoDocID = "navigation-path"

// MongoConfig configures a MongoDB storage backend.
type MongoConfig struct {
	URI        string // connection string, defaults to mongodb://localhost:27017
	Database   string // defaults to "navstack"
	Collection string // defaults to "paths"
}

// pathDoc is the persisted document shape.
type pathDoc struct {
	ID        string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStorage persists the encoded path in a single MongoDB document.
type MongoStorage struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStorage connects to MongoDB and verifies the connection.
func NewMongoStorage(ctx context.Context, cfg MongoConfig) (*MongoStorage, error) {
	if cfg.URI == "" {
		cfg.URI = "mongodb://localhost:27017"
	}
	if cfg.Database == "" {
		cfg.Database = "navstack"
	}
	if cfg.Collection == "" {
		cfg.Collection = "paths"
	}
	if err := errors.ValidateStorageKey(cfg.Collection); err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorageUnavailable, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorageUnavailable, err, "ping mongodb")
	}

	return &MongoStorage{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Load fetches the path document. An absent document is not an error.
func (m *MongoStorage) Load(ctx context.Context) ([]byte, bool, error) {
	var doc pathDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": mongoDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeLoad, err, "find path document")
	}
	return doc.Data, true, nil
}

// Save upserts the path document.
func (m *MongoStorage) Save(ctx context.Context, data []byte) error {
	doc := pathDoc{
		ID:        mongoDocID,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": mongoDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeSave, err, "upsert path document")
	}
	return nil
}

// Clear removes the path document.
func (m *MongoStorage) Clear(ctx context.Context) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": mongoDocID}); err != nil {
		return errors.Wrap(errors.ErrCodeSave, err, "delete path document")
	}
	return nil
}

// Close disconnects the MongoDB client.
func (m *MongoStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

// Ensure MongoStorage implements Storage.
var _ Storage = (*MongoStorage)(nil)
