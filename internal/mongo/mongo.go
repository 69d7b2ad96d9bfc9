package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	collectionPhotos = "photos"
	collectionAlbums = "albums"
)

const defaultConnectTimeout = 10 * time.Second

// Config holds the connection settings for the document store.
type Config struct {
	URL            string
	Database       string
	AppName        string
	ConnectTimeout time.Duration
}

// Mongo represents the type to interact with the MongoDB database. A single
// Mongo is created at startup and shared; the underlying client is safe for
// concurrent use.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	photos *mongo.Collection
	albums *mongo.Collection
	logger tools.Logger
}

// New creates a new Mongo store and connects the client.
func New(ctx context.Context, c Config, logger tools.Logger) (*Mongo, error) {
	if c.URL == "" {
		return nil, errors.New("mongo url must be provided")
	}
	if c.Database == "" {
		return nil, errors.New("mongo database must be provided")
	}
	timeout := c.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(c.URL).
		SetConnectTimeout(timeout)
	if c.AppName != "" {
		opts.SetAppName(c.AppName)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "connect mongo client")
	}

	db := client.Database(c.Database)
	logger.Info("mongo client created",
		"database", c.Database,
	)
	return &Mongo{
		client: client,
		db:     db,
		photos: db.Collection(collectionPhotos),
		albums: db.Collection(collectionAlbums),
		logger: logger,
	}, nil
}

// Ping checks that the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return errors.Wrap(m.client.Ping(ctx, readpref.Primary()), "ping mongo primary")
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return errors.Wrap(m.client.Disconnect(ctx), "disconnect mongo client")
}
