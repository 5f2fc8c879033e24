package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MikeSquared-Agency/reflectline/internal/journal"
)

const (
	defaultMongoDatabase = "reflectline"
	journalsCollection   = "journals"
)

// reflectionDoc is the BSON shape of a reflection. The id is stored as its
// string form so documents stay readable in the shell.
type reflectionDoc struct {
	ID        string    `bson:"_id"`
	Timestamp time.Time `bson:"timestamp"`
	RawText   string    `bson:"rawText"`
	Summary   string    `bson:"summary"`
	Energy    string    `bson:"energy"`
	Gratitude []string  `bson:"gratitude"`
}

type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongo connects to MongoDB. The database comes from the URI path and
// defaults to "reflectline".
func NewMongo(ctx context.Context, uri string) (*MongoStore, error) {
	dbName, err := mongoDatabaseName(uri)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(dbName).Collection(journalsCollection),
	}, nil
}

func mongoDatabaseName(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse mongo uri: %w", err)
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name, nil
	}
	return defaultMongoDatabase, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Save inserts a reflection document.
func (s *MongoStore) Save(ctx context.Context, r *journal.Reflection) error {
	gratitude := r.Gratitude
	if gratitude == nil {
		gratitude = []string{}
	}
	_, err := s.coll.InsertOne(ctx, reflectionDoc{
		ID:        r.ID.String(),
		Timestamp: r.Timestamp,
		RawText:   r.RawText,
		Summary:   r.Summary,
		Energy:    string(r.Energy),
		Gratitude: gratitude,
	})
	if err != nil {
		return fmt.Errorf("insert reflection: %w", err)
	}
	return nil
}

// List returns all reflections sorted by timestamp, most recent first.
func (s *MongoStore) List(ctx context.Context) ([]journal.Reflection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reflections: %w", err)
	}

	var docs []reflectionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reflections: %w", err)
	}

	out := make([]journal.Reflection, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toReflection())
	}
	return out, nil
}

func (d reflectionDoc) toReflection() journal.Reflection {
	// Documents written by other tools may carry non-uuid ids; they keep uuid.Nil.
	id, _ := uuid.Parse(d.ID)
	gratitude := d.Gratitude
	if gratitude == nil {
		gratitude = []string{}
	}
	return journal.Reflection{
		ID:        id,
		Timestamp: d.Timestamp.UTC(),
		RawText:   d.RawText,
		Summary:   d.Summary,
		Energy:    journal.Energy(d.Energy),
		Gratitude: gratitude,
	}
}
