package repository

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/scorecard/pkg/errors"
	"github.com/matzehuels/scorecard/pkg/game"
	scio "github.com/matzehuels/scorecard/pkg/io"
	"github.com/matzehuels/scorecard/pkg/observability"
)

// Mongo defaults.
const (
	DefaultMongoDatabase   = "scorecard"
	DefaultMongoCollection = "games"
	mongoConnectTimeout    = 10 * time.Second
)

// MongoRepository reads game documents from a MongoDB collection. Documents
// use the game ID as _id and carry a "date" field for listing.
type MongoRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoRepository connects to uri and verifies the server is reachable.
// Empty database and collection names fall back to the defaults.
func NewMongoRepository(ctx context.Context, uri, database, collection string) (*MongoRepository, error) {
	if database == "" {
		database = DefaultMongoDatabase
	}
	if collection == "" {
		collection = DefaultMongoCollection
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "mongo uri")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to mongo")
	}
	return &MongoRepository{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Get loads the document with _id == key.ID().
func (r *MongoRepository) Get(ctx context.Context, key Key) (g *game.Game, err error) {
	start := time.Now()
	defer func() {
		observability.Repository().OnFetch(ctx, "mongo", key.ID(), time.Since(start), err)
	}()

	var doc scio.Document
	err = r.collection.FindOne(ctx, bson.M{"_id": key.ID()}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "find %s", key.ID())
	}
	return doc.Game()
}

// Put upserts g as the document for key.
func (r *MongoRepository) Put(ctx context.Context, key Key, g *game.Game) error {
	doc := scio.FromGame(g)
	doc.ID = key.ID()
	doc.Date = key.Date
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "store %s", doc.ID)
	}
	return nil
}

// List returns the keys of the documents stored for date.
func (r *MongoRepository) List(ctx context.Context, date string) ([]Key, error) {
	if _, err := errors.ValidateDate(date); err != nil {
		return nil, err
	}
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"date": date}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "list %s", date)
	}
	defer cursor.Close(ctx)

	var keys []Key
	for cursor.Next(ctx) {
		var row struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode game id")
		}
		key, err := ParseID(row.ID)
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "list %s", date)
	}
	return keys, nil
}

// Close disconnects the client.
func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
